package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trainose/trainose/pkg/edges"
	"github.com/trainose/trainose/pkg/ose"
)

func EdgesRouter(router fiber.Router, client *ose.Client) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listEdges(c, client)
	})
}

func listEdges(c *fiber.Ctx, client *ose.Client) error {
	networkEdges, err := edges.Fetch(c.Context(), client)
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(networkEdges)
}
