package stations

import "fmt"

// The network only ever spans Greece and its rail-connected neighbours, all
// of which use a single IANA timezone.
var countryAlpha3ToAlpha2 = map[string]string{
	"GRC": "GR",
	"MKD": "MK",
	"BGR": "BG",
	"SRB": "RS",
	"ALB": "AL",
	"TUR": "TR",
}

var countryTimezones = map[string]string{
	"GR": "Europe/Athens",
	"MK": "Europe/Skopje",
	"BG": "Europe/Sofia",
	"RS": "Europe/Belgrade",
	"AL": "Europe/Tirane",
	"TR": "Europe/Istanbul",
}

func transformISOCode(alpha3 string) (string, error) {
	// The operator reports North Macedonia as SKO. Without taking any
	// specific side here, MKD is the ISO-standard code.
	if alpha3 == "SKO" {
		alpha3 = "MKD"
	}

	alpha2, found := countryAlpha3ToAlpha2[alpha3]
	if !found {
		return "", fmt.Errorf("unknown country code %q, please report this issue", alpha3)
	}

	return alpha2, nil
}

func timezoneForCountry(alpha2 string) (string, error) {
	timezone, found := countryTimezones[alpha2]
	if !found {
		return "", fmt.Errorf("no known timezone for country %q, please report this issue", alpha2)
	}

	return timezone, nil
}
