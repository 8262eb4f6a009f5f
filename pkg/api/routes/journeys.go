package routes

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/trainose/trainose/pkg/journeys"
	"github.com/trainose/trainose/pkg/ose"
)

func JourneysRouter(router fiber.Router, client *ose.Client) {
	router.Get("/:origin/:destination", func(c *fiber.Ctx) error {
		return getJourneysBetweenStations(c, client)
	})
}

func getJourneysBetweenStations(c *fiber.Ctx, client *ose.Client) error {
	originIdentifier := c.Params("origin")
	destinationIdentifier := c.Params("destination")

	opts := &journeys.Options{}

	if countString := c.Query("count"); countString != "" {
		count, err := strconv.Atoi(countString)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter count should be an integer",
			})
		}
		opts.Results = count
	}

	if transfersString := c.Query("transfers"); transfersString != "" {
		transfers, err := strconv.Atoi(transfersString)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter transfers should be an integer",
			})
		}
		opts.Transfers = &transfers
	}

	if intervalString := c.Query("interval"); intervalString != "" {
		interval, err := strconv.Atoi(intervalString)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter interval should be an integer number of minutes",
			})
		}
		opts.Interval = &interval
	}

	if datetimeString := c.Query("datetime"); datetimeString != "" {
		datetime, err := time.Parse(time.RFC3339, datetimeString)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter datetime should be an RFC3339/ISO8601 datetime",
			})
		}
		opts.When = &datetime
	}

	planner, err := journeys.NewPlanner(c.Context(), client)
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	found, err := planner.FindJourneys(c.Context(), originIdentifier, destinationIdentifier, opts)
	if err != nil {
		var invalidArgument journeys.InvalidArgumentError
		if errors.As(err, &invalidArgument) {
			c.SendStatus(fiber.StatusBadRequest)
		} else {
			c.SendStatus(fiber.StatusBadGateway)
		}
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	journeysReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, found)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Journeys",
		})
	}

	return c.JSON(journeysReduced)
}
