package journeys

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/iter"
	"github.com/trainose/trainose/pkg/fptf"
	"github.com/trainose/trainose/pkg/ose"
	"github.com/trainose/trainose/pkg/stations"
	"github.com/trainose/trainose/pkg/util"
)

// CivilDayTimezone is the calendar the upstream search operates in
const CivilDayTimezone = "Europe/Athens"

const civilDayFormat = "2006-01-02"

// Planner answers journey searches over an upstream that only serves one
// calendar day per request. The directory is read-only for the planner's
// lifetime.
type Planner struct {
	Fetcher   ose.DayFetcher
	Directory *stations.Directory
}

// NewPlanner fetches the station directory once and binds it to the given
// client for subsequent searches.
func NewPlanner(ctx context.Context, client *ose.Client) (*Planner, error) {
	directory, err := stations.Fetch(ctx, client)
	if err != nil {
		return nil, err
	}

	return &Planner{
		Fetcher:   client,
		Directory: directory,
	}, nil
}

// FindJourneys searches for journeys from origin to destination. Both
// references are either a bare station id or a station-typed object carrying
// one. Results keep the upstream order, day by day.
func (p *Planner) FindJourneys(ctx context.Context, origin any, destination any, opts *Options) ([]*fptf.Journey, error) {
	if opts == nil {
		opts = &Options{}
	}

	originID, err := stationRefID("origin", origin)
	if err != nil {
		return nil, err
	}
	destinationID, err := stationRefID("destination", destination)
	if err != nil {
		return nil, err
	}

	reference, err := opts.validate()
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(CivilDayTimezone)
	if err != nil {
		return nil, err
	}

	var endDate time.Time
	if opts.Interval != nil {
		endDate = reference.Add(time.Duration(*opts.Interval) * time.Minute)
	}

	// Fetch at least the civil day containing the reference instant, then
	// keep advancing one day at a time while the window is not exhausted.
	// A failed day aborts the whole search, no partial results.
	var journeys []*fptf.Journey
	cursor := reference.In(location)

	for {
		day, err := p.buildDay(ctx, originID, destinationID, cursor.Format(civilDayFormat))
		if err != nil {
			return nil, err
		}
		journeys = append(journeys, day...)

		cursor = util.StartOfNextDay(cursor)
		if opts.Interval == nil || cursor.After(endDate) {
			break
		}
	}

	util.InPlaceFilter(&journeys, func(journey *fptf.Journey) bool {
		return len(journey.Legs) > 0 && !journey.Legs[0].Departure.Before(reference)
	})

	if opts.Interval != nil {
		util.InPlaceFilter(&journeys, func(journey *fptf.Journey) bool {
			return !journey.Legs[0].Departure.After(endDate)
		})
	}

	if opts.Transfers != nil {
		maxLegs := *opts.Transfers + 1
		util.InPlaceFilter(&journeys, func(journey *fptf.Journey) bool {
			return len(journey.Legs) <= maxLegs
		})
	}

	if opts.Results > 0 && len(journeys) > opts.Results {
		journeys = journeys[:opts.Results]
	}

	return journeys, nil
}

// buildDay fetches one civil day of raw results and assembles them
// concurrently, preserving the upstream result order.
func (p *Planner) buildDay(ctx context.Context, originID string, destinationID string, day string) ([]*fptf.Journey, error) {
	raw, err := p.Fetcher.FetchDay(ctx, originID, destinationID, day)
	if err != nil {
		return nil, err
	}

	return iter.MapErr(raw, func(rawJourney *ose.RawJourney) (*fptf.Journey, error) {
		return buildJourney(p.Directory, rawJourney)
	})
}

func stationRefID(argument string, ref any) (string, error) {
	switch v := ref.(type) {
	case string:
		if v == "" {
			return "", InvalidArgumentError{Argument: argument, Reason: "invalid or missing station id"}
		}
		return v, nil
	case fptf.Station:
		return stationRefID(argument, &v)
	case *fptf.Station:
		if v == nil {
			return "", InvalidArgumentError{Argument: argument, Reason: "invalid or missing station reference"}
		}
		if v.Type != "station" {
			return "", InvalidArgumentError{Argument: argument, Reason: "invalid or missing station type"}
		}
		if v.ID == "" {
			return "", InvalidArgumentError{Argument: argument, Reason: "invalid or missing station id"}
		}
		return v.ID, nil
	default:
		return "", InvalidArgumentError{Argument: argument, Reason: "must be a station id or station object"}
	}
}
