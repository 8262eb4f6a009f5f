package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trainose/trainose/pkg/api/routes"
	"github.com/trainose/trainose/pkg/http_server"
	"github.com/trainose/trainose/pkg/ose"
)

func CreateServer(client *ose.Client) *fiber.App {
	webApp := fiber.New()
	webApp.Use(http_server.NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StationsRouter(group.Group("/stations"), client)
	routes.EdgesRouter(group.Group("/edges"), client)
	routes.JourneysRouter(group.Group("/journeys"), client)

	return webApp
}

func SetupServer(listen string, client *ose.Client) error {
	return CreateServer(client).Listen(listen)
}
