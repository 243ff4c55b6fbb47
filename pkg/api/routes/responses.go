package routes

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/travigo/punctuality/pkg/analysis"
	"github.com/travigo/punctuality/pkg/util"
)

func sendError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, analysis.ErrNotFound):
		c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, analysis.ErrMalformedRoute), errors.Is(err, analysis.ErrInsufficientData):
		c.SendStatus(fiber.StatusUnprocessableEntity)
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("Failed to answer request")
		c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}

func sendBadRequest(c *fiber.Ctx, message string) error {
	c.SendStatus(fiber.StatusBadRequest)
	return c.JSON(fiber.Map{
		"error": message,
	})
}

// sendReduced marshals data keeping only the fields of the requested group
func sendReduced(c *fiber.Ctx, data interface{}) error {
	group := c.Query("group", "basic")
	if group != "basic" && group != "detailed" {
		return sendBadRequest(c, "Parameter group should be basic or detailed")
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{group},
	}, data)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce response",
		})
	}

	return c.JSON(reduced)
}

func parseModes(c *fiber.Ctx) (analysis.Modes, error) {
	holdup, err := analysis.ParseHoldupKind(c.Query("holdup", analysis.HoldupTotal.String()))
	if err != nil {
		return analysis.Modes{}, err
	}

	measure, err := analysis.ParseMeasureKind(c.Query("measure", analysis.MeasureDelay.String()))
	if err != nil {
		return analysis.Modes{}, err
	}

	direction, err := analysis.ParseDirection(c.Query("direction"))
	if err != nil {
		return analysis.Modes{}, err
	}

	perStop, err := strconv.ParseBool(c.Query("per_stop", "true"))
	if err != nil {
		return analysis.Modes{}, errors.New("Parameter per_stop should be a boolean")
	}

	return analysis.Modes{
		Holdup:    holdup,
		Measure:   measure,
		Direction: direction,
		PerStop:   perStop,
	}, nil
}

func parseCutoff(c *fiber.Ctx) (float64, error) {
	cutoffString := c.Query("cutoff")
	if cutoffString == "" {
		return 0, errors.New("Parameter cutoff is required")
	}

	cutoff, err := strconv.ParseFloat(cutoffString, 64)
	if err != nil {
		return 0, errors.New("Parameter cutoff should be a number of seconds")
	}

	return cutoff, nil
}

func parseLines(c *fiber.Ctx, defaultLines []string) ([]string, error) {
	lines := defaultLines
	if linesQuery := c.Query("lines"); linesQuery != "" {
		lines = util.SplitList(linesQuery)
	}

	if len(lines) == 0 {
		return nil, errors.New("Parameter lines is required")
	}

	return lines, nil
}
