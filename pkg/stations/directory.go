package stations

import (
	"context"
	"fmt"

	"github.com/trainose/trainose/pkg/fptf"
	"github.com/trainose/trainose/pkg/ose"
)

// UnknownStationError is returned when a schedule result references a station
// code that the network dump does not contain.
type UnknownStationError struct {
	ID string
}

func (e UnknownStationError) Error() string {
	return fmt.Sprintf("unknown station %q", e.ID)
}

// Directory is a read-only station lookup table. It is populated once and
// never mutated afterwards, so concurrent legs can resolve against it without
// coordination.
type Directory struct {
	stations []*fptf.Station
	byID     map[string]*fptf.Station
}

func NewDirectory(stations []*fptf.Station) *Directory {
	directory := &Directory{
		stations: stations,
		byID:     map[string]*fptf.Station{},
	}

	for _, station := range stations {
		directory.byID[station.ID] = station
	}

	return directory
}

// Fetch builds a directory from a fresh network dump. Call once per query
// session, the result is immutable.
func Fetch(ctx context.Context, client *ose.Client) (*Directory, error) {
	network, err := client.FetchNetwork(ctx)
	if err != nil {
		return nil, err
	}

	stations := make([]*fptf.Station, 0, len(network.Nodes))
	for _, node := range network.Nodes {
		station, err := createStation(node)
		if err != nil {
			return nil, err
		}

		stations = append(stations, station)
	}

	return NewDirectory(stations), nil
}

func (d *Directory) Resolve(id string) (*fptf.Station, error) {
	station, found := d.byID[id]
	if !found {
		return nil, UnknownStationError{ID: id}
	}

	return station, nil
}

// All returns the stations in network dump order
func (d *Directory) All() []*fptf.Station {
	return d.stations
}
