package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/punctuality/pkg/analysis"
)

type routesHandler struct {
	analyser *analysis.Analyser
}

// RoutesRouter serves per route results. Route labels contain spaces so they are passed as the
// route query parameter.
func RoutesRouter(router fiber.Router, analyser *analysis.Analyser) {
	handler := &routesHandler{analyser: analyser}

	router.Get("/stops", handler.getStops)
	router.Get("/contributions", handler.getContributions)
	router.Get("/delay", handler.getDelay)
	router.Get("/major_delays", handler.getMajorDelays)
}

func (h *routesHandler) getStops(c *fiber.Ctx) error {
	route := c.Query("route")
	if route == "" {
		return sendBadRequest(c, "Parameter route is required")
	}

	stops, err := h.analyser.StopsOnRoute(route)
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(fiber.Map{
		"route": route,
		"stops": stops,
	})
}

func (h *routesHandler) getContributions(c *fiber.Ctx) error {
	route := c.Query("route")
	if route == "" {
		return sendBadRequest(c, "Parameter route is required")
	}

	contributions, err := h.analyser.Contributions(route)
	if err != nil {
		return sendError(c, err)
	}

	return sendReduced(c, contributions)
}

func (h *routesHandler) getDelay(c *fiber.Ctx) error {
	route := c.Query("route")
	if route == "" {
		return sendBadRequest(c, "Parameter route is required")
	}

	modes, err := parseModes(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	absolute := modes.Measure == analysis.MeasureDeviation
	value, err := h.analyser.DelayAlongRoute(route, modes.Holdup, absolute)
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(fiber.Map{
		"route":   route,
		"holdup":  modes.Holdup.String(),
		"measure": modes.Measure.String(),
		"value":   value,
	})
}

func (h *routesHandler) getMajorDelays(c *fiber.Ctx) error {
	route := c.Query("route")
	if route == "" {
		return sendBadRequest(c, "Parameter route is required")
	}

	modes, err := parseModes(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}
	cutoff, err := parseCutoff(c)
	if err != nil {
		return sendBadRequest(c, err.Error())
	}

	frequency, err := h.analyser.FreqMajorDelaysRoute(route, cutoff, modes.PerStop, modes.Measure)
	if err != nil {
		return sendError(c, err)
	}

	return sendReduced(c, frequency)
}
