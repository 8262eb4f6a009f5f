package fptf

import "strings"

type Journey struct {
	Type string `json:"type" groups:"basic,detailed"`
	ID   string `json:"id" groups:"basic,detailed"`

	Legs []*Leg `json:"legs" groups:"basic,detailed"`

	// Only set when every leg carries a price
	Price *Price `json:"price,omitempty" groups:"basic,detailed"`
}

// GenerateIdentifier concatenates the leg identity keys in travel order.
// Identical leg sequences always hash to the same journey identifier.
func (j *Journey) GenerateIdentifier() string {
	parts := make([]string, len(j.Legs))
	for i, leg := range j.Legs {
		parts[i] = leg.Schedule
	}
	return strings.Join(parts, "_")
}
