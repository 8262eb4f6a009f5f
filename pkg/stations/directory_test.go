package stations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trainose/trainose/pkg/ose"
)

const networkFixture = `{
	"data": {
		"nodes": [
			{"STAT": "ΑΘΗΝ", "LABEL_EL": "Αθήνα", "LABEL_EN": "Athens", "LON": 23.72, "LAT": 37.99, "COUNTRY": "GRC", "IS_ACTIVE": 1},
			{"STAT": "ΣΚΟΠ", "LABEL_EL": "Σκόπια", "LABEL_EN": "Skopje", "LON": 21.44, "LAT": 41.99, "COUNTRY": "SKO", "IS_ACTIVE": 0}
		],
		"edges": [
			{"NODE1": "ΑΘΗΝ", "NODE2": "ΣΚΟΠ", "DIST_KM": 703.5}
		]
	}
}`

func fixtureServer(t *testing.T, body string) *ose.Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client := ose.NewClient()
	client.Endpoint = server.URL

	return client
}

func TestFetch(t *testing.T) {
	directory, err := Fetch(context.Background(), fixtureServer(t, networkFixture))
	require.NoError(t, err)

	t.Run("normalises a Greek station", func(t *testing.T) {
		athens, err := directory.Resolve("ΑΘΗΝ")
		require.NoError(t, err)

		assert.Equal(t, "station", athens.Type)
		assert.Equal(t, "Αθήνα", athens.Name)
		assert.Equal(t, "Athens", athens.NameEnglish)
		assert.Equal(t, "GR", athens.Location.Country)
		assert.Equal(t, "Europe/Athens", athens.Location.Timezone)
		assert.Equal(t, 23.72, athens.Location.Longitude)
		assert.True(t, athens.Active)
	})

	t.Run("maps the operator's SKO country code to MK", func(t *testing.T) {
		skopje, err := directory.Resolve("ΣΚΟΠ")
		require.NoError(t, err)

		assert.Equal(t, "MK", skopje.Location.Country)
		assert.Equal(t, "Europe/Skopje", skopje.Location.Timezone)
		assert.False(t, skopje.Active)
	})

	t.Run("unknown ids fail with UnknownStationError", func(t *testing.T) {
		_, err := directory.Resolve("ΧΧΧΧ")

		var unknownStation UnknownStationError
		require.ErrorAs(t, err, &unknownStation)
		assert.Equal(t, "ΧΧΧΧ", unknownStation.ID)
	})

	t.Run("keeps network dump order", func(t *testing.T) {
		all := directory.All()
		require.Len(t, all, 2)
		assert.Equal(t, "ΑΘΗΝ", all[0].ID)
		assert.Equal(t, "ΣΚΟΠ", all[1].ID)
	})
}

func TestFetchRejectsBadRecords(t *testing.T) {
	t.Run("unknown country code", func(t *testing.T) {
		client := fixtureServer(t, `{"data": {"nodes": [
			{"STAT": "X", "LABEL_EL": "X", "LABEL_EN": "X", "LON": 0, "LAT": 0, "COUNTRY": "ZZZ", "IS_ACTIVE": 1}
		]}}`)

		_, err := Fetch(context.Background(), client)
		assert.ErrorContains(t, err, "unknown country code")
	})

	t.Run("unexpected IS_ACTIVE value", func(t *testing.T) {
		client := fixtureServer(t, `{"data": {"nodes": [
			{"STAT": "X", "LABEL_EL": "X", "LABEL_EN": "X", "LON": 0, "LAT": 0, "COUNTRY": "GRC", "IS_ACTIVE": 7}
		]}}`)

		_, err := Fetch(context.Background(), client)
		assert.ErrorContains(t, err, "IS_ACTIVE")
	})
}
