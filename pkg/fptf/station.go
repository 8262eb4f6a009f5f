package fptf

type Station struct {
	Type string `json:"type" groups:"basic,detailed"`
	ID   string `json:"id" groups:"basic,detailed"`

	Name        string `json:"name" groups:"basic,detailed"`
	NameEnglish string `json:"nameEnglish,omitempty" groups:"basic,detailed"`

	Location *Location `json:"location,omitempty" groups:"basic,detailed"`

	Active bool `json:"active" groups:"detailed"`
}

type Location struct {
	Type      string  `json:"type" groups:"basic,detailed"`
	Longitude float64 `json:"longitude" groups:"basic,detailed"`
	Latitude  float64 `json:"latitude" groups:"basic,detailed"`

	// Country is an ISO-3166 alpha-2 code, Timezone an IANA zone name
	Country  string `json:"country" groups:"basic,detailed"`
	Timezone string `json:"timezone" groups:"basic,detailed"`
}
