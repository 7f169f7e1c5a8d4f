// Package gamesvc provides the client for the game discovery service,
// which owns the canonical game catalog. All catalog data is read-only
// from this service's perspective.
package gamesvc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"

	"github.com/meeplehaven/viewsrv/internal/common/apperrors"
	"github.com/meeplehaven/viewsrv/internal/common/httpclient"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/collection"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const boardGamesPath = "/api/v1/board_games"

// Client calls the game discovery service over HTTP.
type Client struct {
	caller httpclient.Caller
}

// NewClient creates a game discovery client from the given upstream
// configuration.
func NewClient(config httpclient.Configurator) *Client {
	return &Client{
		caller: httpclient.NewClient(config),
	}
}

// GetByID looks up a single game. An upstream 404 is the not-found
// signal and returns (nil, nil); every other failure is an upstream error.
func (c *Client) GetByID(ctx context.Context, gameID int64) (*collection.CatalogRecord, apperrors.Error) {
	body, err := c.caller.DoRequest(ctx, httpclient.RequestOptions{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("%s/%d", boardGamesPath, gameID),
	})
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, mapError(ctx, err)
	}

	var record collection.CatalogRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, malformed(ctx, "unable to decode catalog record")
	}
	return &record, nil
}

// GetByIDs looks up a set of games, narrowed by any query-time filters.
// The upstream envelope is {"board_games": [...]}. Ids are sent as a
// comma-separated list; filters combine with AND semantics upstream.
func (c *Client) GetByIDs(ctx context.Context, ids []int64, filters collection.CatalogFilters) ([]collection.CatalogRecord, apperrors.Error) {
	if len(ids) == 0 {
		return []collection.CatalogRecord{}, nil
	}

	body, err := c.caller.DoRequest(ctx, httpclient.RequestOptions{
		Method:      http.MethodGet,
		Path:        boardGamesPath,
		QueryParams: queryParams(ids, filters),
	})
	if err != nil {
		return nil, mapError(ctx, err)
	}

	if !gjson.ValidBytes(body) {
		return nil, malformed(ctx, "catalog response is not valid JSON")
	}

	games := gjson.GetBytes(body, "board_games")
	if !games.Exists() {
		return nil, malformed(ctx, "catalog response missing board_games")
	}

	var records []collection.CatalogRecord
	if err := json.Unmarshal([]byte(games.Raw), &records); err != nil {
		return nil, malformed(ctx, "unable to decode catalog records")
	}
	return records, nil
}

func queryParams(ids []int64, filters collection.CatalogFilters) map[string]string {
	idStrs := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrs = append(idStrs, strconv.FormatInt(id, 10))
	}
	params := map[string]string{
		"ids": strings.Join(idStrs, ","),
	}
	if filters.PlayerCount != nil {
		params["player_count"] = strconv.Itoa(*filters.PlayerCount)
	}
	if filters.MaxPlayingTime != nil {
		params["max_playing_time"] = strconv.Itoa(*filters.MaxPlayingTime)
	}
	if len(filters.GameTypes) > 0 {
		params["game_types"] = strings.Join(filters.GameTypes, ",")
	}
	if filters.MinRating != nil {
		params["min_rating"] = strconv.FormatFloat(*filters.MinRating, 'f', -1, 64)
	}
	return params
}

// Compile-time check that Client satisfies the domain interface.
var _ collection.CatalogClient = &Client{}
