package gamesvc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeplehaven/viewsrv/internal/viewsrv/collection"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/config"
)

func newTestClient(url string) *Client {
	return NewClient(&config.UpstreamConfig{URL: url, Timeout: "5s"})
}

func TestGetByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/board_games/1", r.URL.Path)
		w.Write([]byte(`{"id":1,"name":"Catan","rating":7.5,"min_players":3,"max_players":4}`))
	}))
	defer srv.Close()

	record, err := newTestClient(srv.URL).GetByID(context.Background(), 1)
	require.Nil(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Catan", record.Name)
	require.NotNil(t, record.MinPlayers)
	assert.Equal(t, 3, *record.MinPlayers)
}

func TestGetByIDNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	record, err := newTestClient(srv.URL).GetByID(context.Background(), 999)
	require.Nil(t, err)
	assert.Nil(t, record)
}

func TestGetByIDUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetByID(context.Background(), 1)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, collection.ErrUpstreamUnavailable)
}

func TestGetByIDs(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/board_games", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"board_games":[
			{"id":1,"name":"Catan","rating":7.5},
			{"id":2,"name":"Ticket to Ride","rating":8.0}
		]}`))
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL).GetByIDs(context.Background(), []int64{1, 2}, collection.CatalogFilters{})
	require.Nil(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Catan", records[0].Name)
	assert.Equal(t, []string{"1,2"}, gotQuery["ids"])

	// No filter params are sent when no filters are set
	assert.NotContains(t, gotQuery, "player_count")
	assert.NotContains(t, gotQuery, "min_rating")
}

func TestGetByIDsForwardsFilters(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"board_games":[]}`))
	}))
	defer srv.Close()

	pc, mpt, mr := 4, 90, 7.5
	filters := collection.CatalogFilters{
		PlayerCount:    &pc,
		MaxPlayingTime: &mpt,
		GameTypes:      []string{"strategy", "family"},
		MinRating:      &mr,
	}
	records, err := newTestClient(srv.URL).GetByIDs(context.Background(), []int64{1}, filters)
	require.Nil(t, err)
	assert.Empty(t, records)

	assert.Equal(t, []string{"4"}, gotQuery["player_count"])
	assert.Equal(t, []string{"90"}, gotQuery["max_playing_time"])
	assert.Equal(t, []string{"strategy,family"}, gotQuery["game_types"])
	assert.Equal(t, []string{"7.5"}, gotQuery["min_rating"])
}

func TestGetByIDsEmptyInput(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL).GetByIDs(context.Background(), nil, collection.CatalogFilters{})
	require.Nil(t, err)
	assert.Empty(t, records)
	assert.False(t, called)
}

func TestGetByIDsMalformedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetByIDs(context.Background(), []int64{1}, collection.CatalogFilters{})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, collection.ErrMalformedUpstream)
}

func TestGetByIDsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetByIDs(context.Background(), []int64{1}, collection.CatalogFilters{})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, collection.ErrMalformedUpstream)
}
