package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/punctuality/pkg/analysis"
)

type tablesHandler struct {
	analyser     *analysis.Analyser
	defaultLines []string
}

// TablesRouter serves the per line comparison tables, over the lines query parameter or the
// configured lines
func TablesRouter(router fiber.Router, analyser *analysis.Analyser, defaultLines []string) {
	handler := &tablesHandler{analyser: analyser, defaultLines: defaultLines}

	router.Get("/lines", handler.getLines)
	router.Get("/major_delays", handler.getMajorDelays)
	router.Get("/delays", handler.getDelays)
}

func (h *tablesHandler) getLines(c *fiber.Ctx) error {
	lines, err := parseLines(c, h.defaultLines)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}
	modes, err := parseModes(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	table, err := h.analyser.TableLines(lines, modes.Holdup, modes.PerStop)
	if err != nil {
		return sendError(c, err)
	}

	return sendReduced(c, table)
}

func (h *tablesHandler) getMajorDelays(c *fiber.Ctx) error {
	lines, err := parseLines(c, h.defaultLines)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}
	modes, err := parseModes(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}
	cutoff, err := parseCutoff(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	table, err := h.analyser.TableMajorDelaysLines(lines, cutoff, modes.PerStop, modes.Measure)
	if err != nil {
		return sendError(c, err)
	}

	return sendReduced(c, table)
}

func (h *tablesHandler) getDelays(c *fiber.Ctx) error {
	lines, err := parseLines(c, h.defaultLines)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	table, err := h.analyser.TableDelaysLines(lines)
	if err != nil {
		return sendError(c, err)
	}

	return sendReduced(c, table)
}
