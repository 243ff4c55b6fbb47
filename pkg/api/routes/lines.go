package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/punctuality/pkg/analysis"
)

type linesHandler struct {
	analyser *analysis.Analyser
}

func LinesRouter(router fiber.Router, analyser *analysis.Analyser) {
	handler := &linesHandler{analyser: analyser}

	router.Get("/:line/routes", handler.getRoutes)
	router.Get("/:line/delay", handler.getDelay)
	router.Get("/:line/overview", handler.getOverview)
	router.Get("/:line/major_contributions", handler.getMajorContributions)
	router.Get("/:line/major_delays", handler.getMajorDelays)
	router.Get("/:line/major_holdups", handler.getMajorHoldups)
	router.Get("/:line/endpoint_delays", handler.getEndpointDelays)
}

func (h *linesHandler) getRoutes(c *fiber.Ctx) error {
	line := c.Params("line")

	routes, err := h.analyser.MainRoutesOfLine(line)
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(fiber.Map{
		"line":   line,
		"routes": routes,
	})
}

func (h *linesHandler) getDelay(c *fiber.Ctx) error {
	line := c.Params("line")

	modes, err := parseModes(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	absolute := modes.Measure == analysis.MeasureDeviation
	value, err := h.analyser.MeasureOfDelayLine(line, modes.Holdup, absolute, modes.PerStop)
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(fiber.Map{
		"line":     line,
		"holdup":   modes.Holdup.String(),
		"measure":  modes.Measure.String(),
		"per_stop": modes.PerStop,
		"value":    value,
	})
}

func (h *linesHandler) getOverview(c *fiber.Ctx) error {
	modes, err := parseModes(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	overview, err := h.analyser.Overview(c.Params("line"), modes.Direction, modes.Holdup)
	if err != nil {
		return sendError(c, err)
	}

	return sendReduced(c, overview)
}

func (h *linesHandler) getMajorContributions(c *fiber.Ctx) error {
	modes, err := parseModes(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}
	cutoff, err := parseCutoff(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	contributions, err := h.analyser.MajorContributionsLine(c.Params("line"), cutoff, modes.Direction)
	if err != nil {
		return sendError(c, err)
	}

	return sendReduced(c, contributions)
}

func (h *linesHandler) getMajorDelays(c *fiber.Ctx) error {
	modes, err := parseModes(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}
	cutoff, err := parseCutoff(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	frequency, err := h.analyser.FreqMajorDelaysLine(c.Params("line"), cutoff, modes.PerStop, modes.Measure)
	if err != nil {
		return sendError(c, err)
	}

	return sendReduced(c, frequency)
}

func (h *linesHandler) getMajorHoldups(c *fiber.Ctx) error {
	line := c.Params("line")

	modes, err := parseModes(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}
	cutoff, err := parseCutoff(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	if stop := c.Query("stop"); stop != "" {
		frequency, err := h.analyser.FreqMajorHoldupsStop(line, stop, cutoff, modes.Measure, modes.Direction, modes.Holdup)
		if err != nil {
			return sendError(c, err)
		}

		return sendReduced(c, frequency)
	}

	table, err := h.analyser.FreqMajorHoldupsAllStops(line, cutoff, modes.Measure, modes.Direction, modes.Holdup)
	if err != nil {
		return sendError(c, err)
	}

	return sendReduced(c, table)
}

func (h *linesHandler) getEndpointDelays(c *fiber.Ctx) error {
	line := c.Params("line")

	delays, err := h.analyser.EndpointDelays(line)
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(analysis.LineDelays{
		Line:   line,
		Delays: delays,
	})
}
