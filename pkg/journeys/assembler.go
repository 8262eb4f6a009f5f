package journeys

import (
	"github.com/sourcegraph/conc/iter"
	"github.com/trainose/trainose/pkg/fptf"
	"github.com/trainose/trainose/pkg/ose"
	"github.com/trainose/trainose/pkg/stations"
	"golang.org/x/exp/slices"
)

// buildJourney assembles one search result into a normalised journey. Legs
// are built concurrently but reassembled by segment index, so the output
// order always matches the upstream travel sequence.
func buildJourney(directory *stations.Directory, raw *ose.RawJourney) (*fptf.Journey, error) {
	legs, err := iter.MapErr(raw.Segments, func(segment *ose.RawSegment) (*fptf.Leg, error) {
		return buildLeg(directory, *segment)
	})
	if err != nil {
		return nil, err
	}

	journey := &fptf.Journey{
		Type:  "journey",
		Legs:  legs,
		Price: aggregatePrice(legs),
	}
	journey.ID = journey.GenerateIdentifier()

	return journey, nil
}

// aggregatePrice is all-or-nothing: as soon as one leg has no fare data the
// whole journey has none. Availability is the minimum across legs since the
// scarcest leg bounds the whole trip.
func aggregatePrice(legs []*fptf.Leg) *fptf.Price {
	if len(legs) == 0 {
		return nil
	}

	total := 0.0
	for _, leg := range legs {
		if leg.Price == nil {
			return nil
		}

		total += leg.Price.Amount
	}

	scarcest := slices.MinFunc(legs, func(a *fptf.Leg, b *fptf.Leg) int {
		return a.Price.Available - b.Price.Available
	})

	return &fptf.Price{
		Currency:  legs[0].Price.Currency,
		Amount:    total,
		Class:     legs[0].Price.Class,
		Reduced:   false,
		Available: scarcest.Price.Available,
	}
}
