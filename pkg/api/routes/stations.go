package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/trainose/trainose/pkg/ose"
	"github.com/trainose/trainose/pkg/stations"
)

func StationsRouter(router fiber.Router, client *ose.Client) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listStations(c, client)
	})
	router.Get("/:identifier", func(c *fiber.Ctx) error {
		return getStation(c, client)
	})
}

func listStations(c *fiber.Ctx, client *ose.Client) error {
	directory, err := stations.Fetch(c.Context(), client)
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	stationsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, directory.All())
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Stations",
		})
	}

	return c.JSON(stationsReduced)
}

func getStation(c *fiber.Ctx, client *ose.Client) error {
	identifier := c.Params("identifier")

	directory, err := stations.Fetch(c.Context(), client)
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	station, err := directory.Resolve(identifier)
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Station matching Station Identifier",
		})
	}

	stationReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, station)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Station",
		})
	}

	return c.JSON(stationReduced)
}
