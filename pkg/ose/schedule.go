package ose

import (
	"context"
	"net/url"
)

// RawSegment is one uninterrupted ride of a search result, straight off the
// wire. Date tokens are YYYYMMDD, time tokens H.M in the local clock of the
// respective endpoint.
type RawSegment struct {
	Origin      string `json:"apo"`
	Destination string `json:"ews"`

	DepartureDate string `json:"date1"`
	DepartureTime string `json:"wra1"`
	ArrivalDate   string `json:"date2"`
	ArrivalTime   string `json:"wra2"`

	Train string `json:"treno"`

	Cost  RawCost  `json:"cost"`
	Seats RawSeats `json:"seats"`
}

// RawCost is the nested fare table, class A/B amounts with e = full fare and
// k = reduced fare. Missing or null amounts decode to zero.
type RawCost struct {
	A RawCostClass `json:"a"`
	B RawCostClass `json:"b"`
}

type RawCostClass struct {
	Full    float64 `json:"e"`
	Reduced float64 `json:"k"`
}

type RawSeats struct {
	ClassA int `json:"fa"`
	ClassB int `json:"fb"`
}

// RawJourney is one search result: an ordered chain of segments
type RawJourney struct {
	Segments []RawSegment `json:"segments"`
}

type scheduleResponse struct {
	Data struct {
		Journeys []RawJourney `json:"metabash"`
	} `json:"data"`
}

// DayFetcher is the single-day search contract consumed by the journey
// planner. Client implements it against the live API.
type DayFetcher interface {
	FetchDay(ctx context.Context, originID string, destinationID string, day string) ([]RawJourney, error)
}

// FetchDay runs a schedule search for one calendar day. day is a YYYY-MM-DD
// civil date. The upstream answers at most one day per request, the caller
// loops for longer windows.
func (c *Client) FetchDay(ctx context.Context, originID string, destinationID string, day string) ([]RawJourney, error) {
	params := url.Values{}
	params.Set("c", "dromologia")
	params.Set("op", "vres_dromologia")
	params.Set("apo", originID)
	params.Set("pros", destinationID)
	params.Set("date", day)
	params.Set("time", "23:59")
	params.Set("time_type", "anaxwrhsh")
	params.Set("travel_type", "1")
	params["trena[]"] = []string{"apla", "ic", "ice", "bed"}

	var response scheduleResponse
	if err := c.get(ctx, "vres_dromologia", params, &response); err != nil {
		return nil, err
	}

	return response.Data.Journeys, nil
}
