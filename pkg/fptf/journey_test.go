package fptf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifiers(t *testing.T) {
	location := time.FixedZone("EEST", 3*60*60)

	leg := &Leg{
		Origin:      &Station{Type: "station", ID: "ΑΘΗΝ"},
		Destination: &Station{Type: "station", ID: "ΘΕΣΣ"},
		Departure:   time.Date(2023, 8, 10, 8, 20, 0, 0, location),
		Arrival:     time.Date(2023, 8, 10, 12, 35, 0, 0, location),
		Line:        Line{Type: "line", ID: "884"},
	}

	t.Run("leg identity joins endpoint, instant and line keys", func(t *testing.T) {
		assert.Equal(t, "ΑΘΗΝ_2023-08-10T08:20:00+03:00_ΘΕΣΣ_2023-08-10T12:35:00+03:00_884", leg.Identifier())
	})

	t.Run("journey identity concatenates leg identities in order", func(t *testing.T) {
		second := *leg
		second.Line.ID = "885"
		second.Schedule = second.Identifier()
		leg.Schedule = leg.Identifier()

		journey := &Journey{Type: "journey", Legs: []*Leg{leg, &second}}

		require.NotEqual(t, leg.Schedule, second.Schedule)
		assert.Equal(t, leg.Schedule+"_"+second.Schedule, journey.GenerateIdentifier())

		// Order sensitive
		reversed := &Journey{Type: "journey", Legs: []*Leg{&second, leg}}
		assert.NotEqual(t, journey.GenerateIdentifier(), reversed.GenerateIdentifier())
	})
}
