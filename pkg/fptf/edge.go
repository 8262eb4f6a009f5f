package fptf

// Edge is one physical connection of the operator's network graph
type Edge struct {
	Source string `json:"source" groups:"basic,detailed"`
	Target string `json:"target" groups:"basic,detailed"`

	// Distance in kilometres
	Distance float64 `json:"distance" groups:"basic,detailed"`
}
