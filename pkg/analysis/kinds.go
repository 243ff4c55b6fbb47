package analysis

import (
	"fmt"

	"github.com/travigo/punctuality/pkg/dataset"
)

// HoldupKind selects which holdup column an aggregate is computed over
type HoldupKind int

const (
	HoldupTotal HoldupKind = iota
	HoldupAtStop
	HoldupOnTrajectory
)

func ParseHoldupKind(s string) (HoldupKind, error) {
	switch s {
	case "total":
		return HoldupTotal, nil
	case "at_stop":
		return HoldupAtStop, nil
	case "on_trajectory":
		return HoldupOnTrajectory, nil
	}

	return HoldupTotal, fmt.Errorf("unknown holdup kind %q (expected at_stop, on_trajectory or total)", s)
}

func (k HoldupKind) String() string {
	switch k {
	case HoldupAtStop:
		return "at_stop"
	case HoldupOnTrajectory:
		return "on_trajectory"
	case HoldupTotal:
		return "total"
	}
	panic(fmt.Sprintf("invalid holdup kind %d", int(k)))
}

// Column is the name of the observation column the kind reads
func (k HoldupKind) Column() string {
	switch k {
	case HoldupAtStop:
		return "holdup_stop"
	case HoldupOnTrajectory:
		return "holdup_trajectory"
	case HoldupTotal:
		return "total_holdup"
	}
	panic(fmt.Sprintf("invalid holdup kind %d", int(k)))
}

func (k HoldupKind) Value(observation dataset.Observation) float64 {
	switch k {
	case HoldupAtStop:
		return observation.HoldupStop
	case HoldupOnTrajectory:
		return observation.HoldupTrajectory
	case HoldupTotal:
		return observation.TotalHoldup
	}
	panic(fmt.Sprintf("invalid holdup kind %d", int(k)))
}

func (k HoldupKind) Title() string {
	switch k {
	case HoldupAtStop:
		return "Holdups at stops"
	case HoldupOnTrajectory:
		return "Holdups on trajectories following stops"
	case HoldupTotal:
		return "Holdups from given stop to next stop"
	}
	panic(fmt.Sprintf("invalid holdup kind %d", int(k)))
}

// MeasureKind selects between signed delay and unsigned deviation from the timetable
type MeasureKind int

const (
	MeasureDelay MeasureKind = iota
	MeasureDeviation
)

func ParseMeasureKind(s string) (MeasureKind, error) {
	switch s {
	case "delay":
		return MeasureDelay, nil
	case "deviation":
		return MeasureDeviation, nil
	}

	return MeasureDelay, fmt.Errorf("unknown measure %q (expected delay or deviation)", s)
}

func (m MeasureKind) String() string {
	switch m {
	case MeasureDelay:
		return "delay"
	case MeasureDeviation:
		return "deviation"
	}
	panic(fmt.Sprintf("invalid measure kind %d", int(m)))
}

// Exceeds reports whether value counts as major against threshold
func (m MeasureKind) Exceeds(value float64, threshold float64) bool {
	switch m {
	case MeasureDelay:
		return value > threshold
	case MeasureDeviation:
		return value > threshold || value < -threshold
	}
	panic(fmt.Sprintf("invalid measure kind %d", int(m)))
}

// Direction picks one of the two canonical routes of a line
type Direction int

const (
	DirectionPrimary Direction = iota
	DirectionReverse
)

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "primary":
		return DirectionPrimary, nil
	case "reverse":
		return DirectionReverse, nil
	}

	return DirectionPrimary, fmt.Errorf("unknown direction %q (expected primary or reverse)", s)
}

func (d Direction) String() string {
	switch d {
	case DirectionPrimary:
		return "primary"
	case DirectionReverse:
		return "reverse"
	}
	panic(fmt.Sprintf("invalid direction %d", int(d)))
}
