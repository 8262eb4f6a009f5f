package journeys

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/trainose/trainose/pkg/fptf"
	"github.com/trainose/trainose/pkg/ose"
	"github.com/trainose/trainose/pkg/stations"
	"github.com/trainose/trainose/pkg/util"
)

const OperatorName = "trainOSE"

// buildLeg normalises one raw ride segment. The departure instant is parsed
// in the origin's timezone and the arrival instant in the destination's - on
// cross-border legs the two offsets legitimately differ.
func buildLeg(directory *stations.Directory, raw ose.RawSegment) (*fptf.Leg, error) {
	origin, err := directory.Resolve(raw.Origin)
	if err != nil {
		return nil, err
	}
	destination, err := directory.Resolve(raw.Destination)
	if err != nil {
		return nil, err
	}

	departure, err := parseLocalTime(raw.DepartureDate, raw.DepartureTime, origin.Location.Timezone)
	if err != nil {
		return nil, err
	}
	arrival, err := parseLocalTime(raw.ArrivalDate, raw.ArrivalTime, destination.Location.Timezone)
	if err != nil {
		return nil, err
	}

	leg := &fptf.Leg{
		Origin:      origin,
		Destination: destination,
		Departure:   departure,
		Arrival:     arrival,
		Mode:        fptf.ModeTrain,
		Public:      true,
		Operator:    OperatorName,
		Line: fptf.Line{
			Type:     "line",
			ID:       raw.Train,
			Name:     raw.Train,
			Mode:     fptf.ModeTrain,
			Operator: OperatorName,
		},
		Tariffs: []fptf.Price{
			{Currency: "EUR", Amount: raw.Cost.A.Full, Class: "A", Reduced: false, Available: raw.Seats.ClassA},
			{Currency: "EUR", Amount: raw.Cost.A.Reduced, Class: "A", Reduced: true, Available: raw.Seats.ClassA},
			{Currency: "EUR", Amount: raw.Cost.B.Full, Class: "B", Reduced: false, Available: raw.Seats.ClassB},
			{Currency: "EUR", Amount: raw.Cost.B.Reduced, Class: "B", Reduced: true, Available: raw.Seats.ClassB},
		},
	}

	// The upstream reports missing fares as zero/null, so a zero amount
	// means "no fare data" rather than a free ticket
	util.InPlaceFilter(&leg.Tariffs, func(tariff fptf.Price) bool {
		return tariff.Amount != 0
	})

	if raw.Cost.B.Full != 0 {
		leg.Price = &fptf.Price{
			Currency:  "EUR",
			Amount:    raw.Cost.B.Full,
			Class:     "B",
			Reduced:   false,
			Available: raw.Seats.ClassB,
		}
	}

	leg.Schedule = leg.Identifier()

	return leg, nil
}

// parseLocalTime combines a YYYYMMDD date token and an H.M time token into an
// instant in the given IANA timezone. Hours and minutes arrive without
// consistent zero padding.
func parseLocalTime(dateToken string, timeToken string, timezone string) (time.Time, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}

	day, err := time.ParseInLocation("20060102", dateToken, location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date token %q: %w", dateToken, err)
	}

	hourToken, minuteToken, found := strings.Cut(timeToken, ".")
	if !found {
		return time.Time{}, fmt.Errorf("invalid time token %q", timeToken)
	}

	hour, err := strconv.Atoi(hourToken)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time token %q: %w", timeToken, err)
	}
	minute, err := strconv.Atoi(minuteToken)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time token %q: %w", timeToken, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, location), nil
}
