package ose

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient()
	client.Endpoint = server.URL

	return client
}

func TestFetchNetwork(t *testing.T) {
	var query url.Values

	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"data": {
			"nodes": [{"STAT": "ΑΘΗΝ", "LABEL_EL": "Αθήνα", "LABEL_EN": "Athens", "LON": 23.72, "LAT": 37.99, "COUNTRY": "GRC", "IS_ACTIVE": 1}],
			"edges": [{"NODE1": "ΑΘΗΝ", "NODE2": "ΘΕΣΣ", "DIST_KM": 502.2}]
		}}`))
	})

	network, err := client.FetchNetwork(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "m.data", query.Get("c"))
	assert.Equal(t, "getDiktyo", query.Get("op"))

	require.Len(t, network.Nodes, 1)
	assert.Equal(t, "ΑΘΗΝ", network.Nodes[0].ID)
	assert.Equal(t, "GRC", network.Nodes[0].Country)

	require.Len(t, network.Edges, 1)
	assert.Equal(t, 502.2, network.Edges[0].DistanceKM)
}

func TestFetchDay(t *testing.T) {
	var query url.Values

	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"data": {"metabash": [
			{"segments": [{
				"apo": "ΑΘΗΝ", "ews": "ΘΕΣΣ",
				"date1": "20230810", "wra1": "08.20",
				"date2": "20230810", "wra2": "12.35",
				"treno": "884",
				"cost": {"a": {"e": 55.1, "k": 41.3}, "b": {"e": 38.5, "k": null}},
				"seats": {"fa": 14, "fb": 102}
			}]}
		]}}`))
	})

	raw, err := client.FetchDay(context.Background(), "ΑΘΗΝ", "ΘΕΣΣ", "2023-08-10")
	require.NoError(t, err)

	assert.Equal(t, "dromologia", query.Get("c"))
	assert.Equal(t, "vres_dromologia", query.Get("op"))
	assert.Equal(t, "ΑΘΗΝ", query.Get("apo"))
	assert.Equal(t, "ΘΕΣΣ", query.Get("pros"))
	assert.Equal(t, "2023-08-10", query.Get("date"))
	assert.Equal(t, "anaxwrhsh", query.Get("time_type"))
	assert.Equal(t, []string{"apla", "ic", "ice", "bed"}, query["trena[]"])

	require.Len(t, raw, 1)
	require.Len(t, raw[0].Segments, 1)

	segment := raw[0].Segments[0]
	assert.Equal(t, "ΑΘΗΝ", segment.Origin)
	assert.Equal(t, "884", segment.Train)
	assert.Equal(t, 38.5, segment.Cost.B.Full)

	// null fare amounts decode to zero, the tariff filter drops them later
	assert.Zero(t, segment.Cost.B.Reduced)
	assert.Equal(t, 102, segment.Seats.ClassB)
}

func TestFetchDayUpstreamErrors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.FetchDay(context.Background(), "ΑΘΗΝ", "ΘΕΣΣ", "2023-08-10")

		var upstream UpstreamFetchError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, "vres_dromologia", upstream.Operation)
	})

	t.Run("malformed body", func(t *testing.T) {
		client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>maintenance</html>"))
		})

		_, err := client.FetchDay(context.Background(), "ΑΘΗΝ", "ΘΕΣΣ", "2023-08-10")

		var upstream UpstreamFetchError
		require.ErrorAs(t, err, &upstream)
	})

	t.Run("connection refused", func(t *testing.T) {
		client := NewClient()
		client.Endpoint = "http://127.0.0.1:1"

		_, err := client.FetchNetwork(context.Background())

		var upstream UpstreamFetchError
		require.ErrorAs(t, err, &upstream)
	})
}
