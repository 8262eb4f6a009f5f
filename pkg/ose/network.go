package ose

import (
	"context"
	"net/url"
)

// NetworkNode is one station record of the getDiktyo network dump
type NetworkNode struct {
	ID           string  `json:"STAT"`
	LabelGreek   string  `json:"LABEL_EL"`
	LabelEnglish string  `json:"LABEL_EN"`
	Longitude    float64 `json:"LON"`
	Latitude     float64 `json:"LAT"`

	// ISO-3166 alpha-3, except SKO which the operator made up
	Country string `json:"COUNTRY"`

	IsActive int `json:"IS_ACTIVE"`
}

// NetworkEdge is one getDiktyo connection between two station nodes
type NetworkEdge struct {
	Source     string  `json:"NODE1"`
	Target     string  `json:"NODE2"`
	DistanceKM float64 `json:"DIST_KM"`
}

type Network struct {
	Nodes []NetworkNode `json:"nodes"`
	Edges []NetworkEdge `json:"edges"`
}

type networkResponse struct {
	Data Network `json:"data"`
}

// FetchNetwork retrieves the full station & edge graph in one call
func (c *Client) FetchNetwork(ctx context.Context) (*Network, error) {
	params := url.Values{}
	params.Set("c", "m.data")
	params.Set("op", "getDiktyo")
	params.Set("client_platform", "ios")
	params.Set("client_version", "2.1.1")

	var response networkResponse
	if err := c.get(ctx, "getDiktyo", params, &response); err != nil {
		return nil, err
	}

	return &response.Data, nil
}
