package dataset

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/rs/zerolog/log"
	"github.com/travigo/punctuality/pkg/util"
)

// Filter keeps only the observations matching a boolean expr expression evaluated against
// the Observation fields, eg. `Line in ["2", "3"] && Route != ""`
func (d *Dataset) Filter(expression string) error {
	program, err := expr.Compile(expression, expr.Env(Observation{}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("invalid filter expression: %w", err)
	}

	before := len(d.Observations)

	var runErr error
	util.InPlaceFilter(&d.Observations, func(observation Observation) bool {
		if runErr != nil {
			return false
		}

		output, err := expr.Run(program, observation)
		if err != nil {
			runErr = err
			return false
		}

		return output.(bool)
	})

	if runErr != nil {
		return fmt.Errorf("failed to evaluate filter expression: %w", runErr)
	}

	log.Debug().
		Str("filter", expression).
		Int("before", before).
		Int("after", len(d.Observations)).
		Msg("Filtered observations")

	return nil
}
