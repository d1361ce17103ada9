package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, AnimalsPath, r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get(APIKeyHeader))
		assert.Equal(t, "red fox", r.URL.Query().Get("name"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAnimals(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `[
		{"name": "Red Fox", "locations": ["Europe"], "characteristics": {"skin_type": "Fur"}},
		{"name": "Fennec Fox", "characteristics": {"diet": "Omnivore"}}
	]`)

	client := NewClient(Options{BaseURL: srv.URL, APIKey: "secret"}, nil)
	records, err := client.FetchAnimals(context.Background(), "red fox")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Red Fox", records[0].Name)
	assert.Equal(t, "Fennec Fox", records[1].Name)

	v, ok := records[0].Characteristics.Get("skin_type")
	assert.True(t, ok)
	assert.Equal(t, "Fur", v)
}

func TestFetchAnimalsNonOK(t *testing.T) {
	srv := newTestServer(t, http.StatusBadRequest, `{"error": "Invalid API Key."}`)

	core, logs := observer.New(zap.WarnLevel)
	client := NewClient(Options{BaseURL: srv.URL, APIKey: "secret"}, zap.New(core))

	records, err := client.FetchAnimals(context.Background(), "red fox")
	require.NoError(t, err)
	require.NotNil(t, records)
	assert.Empty(t, records)

	entries := logs.FilterMessage("animals request failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, http.StatusBadRequest, fields["status"])
	assert.Contains(t, fields["body"], "Invalid API Key.")
}

func TestFetchAnimalsDropsNamelessRecords(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `[{"name": ""}, {"characteristics": {}}, {"name": "Fox"}]`)

	core, logs := observer.New(zap.WarnLevel)
	client := NewClient(Options{BaseURL: srv.URL, APIKey: "secret"}, zap.New(core))

	records, err := client.FetchAnimals(context.Background(), "red fox")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Fox", records[0].Name)
	assert.Equal(t, 2, logs.FilterMessage("dropping animal record without a name").Len())
}

func TestFetchAnimalsEmptyArray(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `[]`)

	records, err := NewClient(Options{BaseURL: srv.URL, APIKey: "secret"}, nil).
		FetchAnimals(context.Background(), "red fox")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchAnimalsBadBody(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `not json`)

	_, err := NewClient(Options{BaseURL: srv.URL, APIKey: "secret"}, nil).
		FetchAnimals(context.Background(), "red fox")
	require.Error(t, err)
}

func TestFetchAnimalsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(Options{BaseURL: url, Timeout: time.Second}, nil).
		FetchAnimals(context.Background(), "fox")
	require.Error(t, err)
}
