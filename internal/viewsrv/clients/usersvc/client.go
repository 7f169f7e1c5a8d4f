// Package usersvc provides the client for the user service, which owns
// collection membership, notes, labels, user ratings, and reviews. The
// caller's identity is forwarded upstream with every request; the user
// service makes its own authorization decisions.
package usersvc

import (
	"context"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"

	"github.com/meeplehaven/viewsrv/internal/common/apperrors"
	"github.com/meeplehaven/viewsrv/internal/common/httpclient"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/collection"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	collectionsPath     = "/api/v1/collections"
	collectionGamesPath = "/api/v1/collections/games"
	reviewsPath         = "/api/v1/reviews"
)

// Client calls the user service over HTTP.
type Client struct {
	caller httpclient.Caller
}

// NewClient creates a user service client from the given upstream
// configuration.
func NewClient(config httpclient.Configurator) *Client {
	return &Client{
		caller: httpclient.NewClient(config),
	}
}

// GetCollection fetches the user's raw collection. The upstream envelope
// is {"games": [...]}; a missing games field is treated as an empty
// collection.
func (c *Client) GetCollection(ctx context.Context, userID string) ([]collection.MembershipRecord, apperrors.Error) {
	body, err := c.caller.DoRequest(ctx, httpclient.RequestOptions{
		Method: http.MethodGet,
		Path:   collectionsPath,
		UserID: userID,
	})
	if err != nil {
		return nil, mapError(ctx, err)
	}

	if !gjson.ValidBytes(body) {
		return nil, malformed(ctx, "collection response is not valid JSON")
	}

	games := gjson.GetBytes(body, "games")
	if !games.Exists() {
		return []collection.MembershipRecord{}, nil
	}

	var records []collection.MembershipRecord
	if err := json.Unmarshal([]byte(games.Raw), &records); err != nil {
		return nil, malformed(ctx, "unable to decode collection games")
	}
	return records, nil
}

type addGameRequest struct {
	GameID     int64    `json:"gameId"`
	Notes      *string  `json:"notes"`
	LabelNames []string `json:"labelNames"`
}

// AddGame adds a game to the user's collection and returns the created
// membership record.
func (c *Client) AddGame(ctx context.Context, userID string, gameID int64, notes *string, labelNames []string) (*collection.MembershipRecord, apperrors.Error) {
	reqBody, err := json.Marshal(addGameRequest{
		GameID:     gameID,
		Notes:      notes,
		LabelNames: labelNames,
	})
	if err != nil {
		return nil, collection.ErrViewError.MsgErr("unable to encode add request", err)
	}

	body, err := c.caller.DoRequest(ctx, httpclient.RequestOptions{
		Method: http.MethodPost,
		Path:   collectionGamesPath,
		Body:   reqBody,
		UserID: userID,
	})
	if err != nil {
		return nil, mapError(ctx, err)
	}

	var record collection.MembershipRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, malformed(ctx, "unable to decode created membership record")
	}
	return &record, nil
}

// RemoveGame removes a game from the user's collection. Upstream errors
// are surfaced as upstream failures, including upstream not-found.
func (c *Client) RemoveGame(ctx context.Context, userID string, gameID int64) apperrors.Error {
	_, err := c.caller.DoRequest(ctx, httpclient.RequestOptions{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("%s/%d", collectionGamesPath, gameID),
		UserID: userID,
	})
	if err != nil {
		return mapError(ctx, err)
	}
	return nil
}

type createReviewRequest struct {
	GameID     int64   `json:"gameId"`
	Rating     float64 `json:"rating"`
	ReviewText string  `json:"reviewText"`
}

// CreateReview creates a review for a game on behalf of the user.
func (c *Client) CreateReview(ctx context.Context, userID string, gameID int64, rating float64, reviewText string) (*collection.Review, apperrors.Error) {
	reqBody, err := json.Marshal(createReviewRequest{
		GameID:     gameID,
		Rating:     rating,
		ReviewText: reviewText,
	})
	if err != nil {
		return nil, collection.ErrViewError.MsgErr("unable to encode review request", err)
	}

	body, err := c.caller.DoRequest(ctx, httpclient.RequestOptions{
		Method: http.MethodPost,
		Path:   reviewsPath,
		Body:   reqBody,
		UserID: userID,
	})
	if err != nil {
		return nil, mapError(ctx, err)
	}

	var review collection.Review
	if err := json.Unmarshal(body, &review); err != nil {
		return nil, malformed(ctx, "unable to decode created review")
	}
	return &review, nil
}

// Compile-time check that Client satisfies the domain interface.
var _ collection.CollectionClient = &Client{}
