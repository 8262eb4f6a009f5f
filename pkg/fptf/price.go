package fptf

// Price is attached as a pointer wherever it appears so that a missing fare
// stays distinguishable from a zero-cost one.
type Price struct {
	Currency string  `json:"currency" groups:"basic,detailed"`
	Amount   float64 `json:"amount" groups:"basic,detailed"`

	Class   string `json:"class" groups:"basic,detailed"`
	Reduced bool   `json:"reduced" groups:"basic,detailed"`

	// Remaining seats at this fare
	Available int `json:"available" groups:"basic,detailed"`
}
