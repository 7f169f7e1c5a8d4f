// Package collection implements the aggregation core of the view service.
// It combines a user's raw collection from the user service with canonical
// game metadata from the game discovery service, and gates mutations on
// catalog validation. All values are request-scoped; the service owns no
// persistent state.
package collection

import (
	"encoding/json"
)

// MembershipRecord is one collection entry owned by the user service.
// Labels are an opaque pass-through: the upstream schema has carried both
// bare strings and structured objects across versions, so no shape is
// assumed here.
type MembershipRecord struct {
	GameID     int64             `json:"gameId"`
	Notes      *string           `json:"notes,omitempty"`
	Labels     []json.RawMessage `json:"labels,omitempty"`
	UserRating *float64          `json:"userRating,omitempty"`
	ModifiedAt string            `json:"modifiedAt,omitempty"`
}

// CatalogRecord is one game's canonical metadata owned by the game
// discovery service. Read-only from this service's perspective.
type CatalogRecord struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Rating          *float64 `json:"rating,omitempty"`
	DifficultyScore *float64 `json:"difficulty_score,omitempty"`
	GameCategories  []string `json:"game_categories,omitempty"`
	GameTypes       []string `json:"game_types,omitempty"`
	MinPlayers      *int     `json:"min_players,omitempty"`
	MaxPlayers      *int     `json:"max_players,omitempty"`
	MinPlayingTime  *int     `json:"min_playing_time,omitempty"`
	MaxPlayingTime  *int     `json:"max_playing_time,omitempty"`
}

// EnrichedEntry pairs a membership record with the catalog record sharing
// its game ID. It is never constructed for a membership record without a
// catalog match.
type EnrichedEntry struct {
	Item MembershipRecord
	Game CatalogRecord
}

// CollectionFilters are the caller-supplied filters for a collection fetch.
// MinUserRating is evaluated locally against membership records; the rest
// are forwarded verbatim to the game discovery service.
type CollectionFilters struct {
	MinUserRating  *float64
	PlayerCount    *int
	MaxPlayingTime *int
	GameTypes      []string
	MinRating      *float64
}

// CatalogFilters returns the subset of filters evaluated by the game
// discovery service.
func (f CollectionFilters) CatalogFilters() CatalogFilters {
	return CatalogFilters{
		PlayerCount:    f.PlayerCount,
		MaxPlayingTime: f.MaxPlayingTime,
		GameTypes:      f.GameTypes,
		MinRating:      f.MinRating,
	}
}

// CatalogFilters are query-time filters applied server-side by the game
// discovery service with AND semantics.
type CatalogFilters struct {
	PlayerCount    *int
	MaxPlayingTime *int
	GameTypes      []string
	MinRating      *float64
}

// IsZero reports whether no filter field is set.
func (f CatalogFilters) IsZero() bool {
	return f.PlayerCount == nil && f.MaxPlayingTime == nil &&
		len(f.GameTypes) == 0 && f.MinRating == nil
}

// Review is a game review owned entirely by the user service. This service
// only validates the game ID and forwards the creation request.
type Review struct {
	ID         int64   `json:"id"`
	GameID     int64   `json:"gameId"`
	Rating     float64 `json:"rating"`
	ReviewText string  `json:"reviewText"`
	CreatedAt  string  `json:"createdAt"`
}

// CreatedReview pairs a newly created review with the catalog record that
// validated its game ID.
type CreatedReview struct {
	Review Review
	Game   CatalogRecord
}
