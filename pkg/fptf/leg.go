package fptf

import (
	"strings"
	"time"
)

const IdentifierTimeFormat = "2006-01-02T15:04:05-07:00"

type Leg struct {
	Origin      *Station `json:"origin" groups:"basic,detailed"`
	Destination *Station `json:"destination" groups:"basic,detailed"`

	// Departure is parsed in the origin's timezone, Arrival in the
	// destination's. The two offsets may differ on cross-border legs.
	Departure time.Time `json:"departure" groups:"basic,detailed"`
	Arrival   time.Time `json:"arrival" groups:"basic,detailed"`

	Mode     Mode   `json:"mode" groups:"basic,detailed"`
	Public   bool   `json:"public" groups:"detailed"`
	Operator string `json:"operator" groups:"basic,detailed"`

	Line Line `json:"line" groups:"basic,detailed"`

	Price   *Price  `json:"price,omitempty" groups:"basic,detailed"`
	Tariffs []Price `json:"tariffs" groups:"detailed"`

	Schedule string `json:"schedule" groups:"basic,detailed"`
}

// Identifier derives the leg's stable identity key. Two legs with the same
// endpoints, instants and train number always produce the same value.
func (l *Leg) Identifier() string {
	return strings.Join([]string{
		l.Origin.ID,
		l.Departure.Format(IdentifierTimeFormat),
		l.Destination.ID,
		l.Arrival.Format(IdentifierTimeFormat),
		l.Line.ID,
	}, "_")
}
