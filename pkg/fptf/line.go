package fptf

type Mode string

const (
	ModeTrain Mode = "train"
	ModeBus        = "bus"
	ModeWatercraft = "watercraft"
)

type Line struct {
	Type string `json:"type" groups:"basic,detailed"`
	ID   string `json:"id" groups:"basic,detailed"`

	// The upstream API only carries a train number, so it doubles as the name
	Name string `json:"name" groups:"basic,detailed"`

	Mode     Mode   `json:"mode" groups:"basic,detailed"`
	Operator string `json:"operator" groups:"basic,detailed"`
}
