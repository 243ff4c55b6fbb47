package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/punctuality/pkg/analysis"
	"github.com/travigo/punctuality/pkg/api/routes"
)

// NewApp builds the read API over an already loaded analyser
func NewApp(analyser *analysis.Analyser, lines []string) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/punctuality")

	group.Get("version", routes.APIVersion)

	routes.StopsRouter(group.Group("/stops"), analyser)
	routes.LinesRouter(group.Group("/lines"), analyser)
	routes.RoutesRouter(group.Group("/routes"), analyser)
	routes.TablesRouter(group.Group("/tables"), analyser, lines)

	return webApp
}

func SetupServer(listen string, analyser *analysis.Analyser, lines []string) error {
	webApp := NewApp(analyser, lines)

	return webApp.Listen(listen)
}
