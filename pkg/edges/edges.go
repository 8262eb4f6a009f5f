package edges

import (
	"context"

	"github.com/trainose/trainose/pkg/fptf"
	"github.com/trainose/trainose/pkg/ose"
)

func createEdge(edge ose.NetworkEdge) fptf.Edge {
	return fptf.Edge{
		Source:   edge.Source,
		Target:   edge.Target,
		Distance: edge.DistanceKM,
	}
}

// Fetch returns every connection of the operator's network graph
func Fetch(ctx context.Context, client *ose.Client) ([]fptf.Edge, error) {
	network, err := client.FetchNetwork(ctx)
	if err != nil {
		return nil, err
	}

	edges := make([]fptf.Edge, 0, len(network.Edges))
	for _, edge := range network.Edges {
		edges = append(edges, createEdge(edge))
	}

	return edges, nil
}
