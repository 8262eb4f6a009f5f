package stations

import (
	"fmt"

	"github.com/trainose/trainose/pkg/fptf"
	"github.com/trainose/trainose/pkg/ose"
)

func createStation(node ose.NetworkNode) (*fptf.Station, error) {
	country, err := transformISOCode(node.Country)
	if err != nil {
		return nil, err
	}

	timezone, err := timezoneForCountry(country)
	if err != nil {
		return nil, err
	}

	active, err := activeBool(node.IsActive)
	if err != nil {
		return nil, err
	}

	return &fptf.Station{
		Type:        "station",
		ID:          node.ID,
		Name:        node.LabelGreek,
		NameEnglish: node.LabelEnglish,
		Location: &fptf.Location{
			Type:      "location",
			Longitude: node.Longitude,
			Latitude:  node.Latitude,
			Country:   country,
			Timezone:  timezone,
		},
		Active: active,
	}, nil
}

func activeBool(isActive int) (bool, error) {
	switch isActive {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected IS_ACTIVE value %d, please report this issue", isActive)
	}
}
