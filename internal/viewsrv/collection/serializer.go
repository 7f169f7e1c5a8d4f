package collection

import (
	"encoding/json"
)

// View serialization: pure mapping from the internal join result to the
// externally exposed response shapes. Defaulting rules for optional fields
// live here and nowhere else — missing fields are omitted or defaulted,
// never an error.

// PlayersView is the nested player count range of an item view.
type PlayersView struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// PlayingTimeView is the nested playing time range of an item view.
type PlayingTimeView struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// ItemView is the externally exposed shape of one enriched collection
// entry: catalog-derived fields merged with the user's membership fields.
type ItemView struct {
	ID              int64             `json:"id"`
	Name            string            `json:"name"`
	Rating          *float64          `json:"rating,omitempty"`
	DifficultyScore *float64          `json:"difficulty_score,omitempty"`
	GameCategories  []string          `json:"game_categories,omitempty"`
	GameTypes       []string          `json:"game_types,omitempty"`
	Players         *PlayersView      `json:"players,omitempty"`
	PlayingTime     *PlayingTimeView  `json:"playing_time,omitempty"`
	Notes           *string           `json:"notes,omitempty"`
	Labels          []json.RawMessage `json:"labels"`
	UserRating      *float64          `json:"user_rating,omitempty"`
	ModifiedAt      string            `json:"modified_at,omitempty"`
}

// CollectionView is the externally exposed shape of a full collection
// fetch. TotalGames always equals len(Collection).
type CollectionView struct {
	UserID     string     `json:"user_id"`
	Collection []ItemView `json:"collection"`
	TotalGames int        `json:"total_games"`
}

// ReviewView is the externally exposed shape of a created review.
type ReviewView struct {
	ID         int64   `json:"id"`
	GameID     int64   `json:"game_id"`
	Rating     float64 `json:"rating"`
	ReviewText string  `json:"review_text"`
	CreatedAt  string  `json:"created_at"`
}

// SerializeCollection maps the enriched entries to the collection-level
// response shape. The count is computed from the serialized entries, never
// from the raw upstream collection size.
func SerializeCollection(userID string, entries []EnrichedEntry) CollectionView {
	items := make([]ItemView, 0, len(entries))
	for _, e := range entries {
		items = append(items, SerializeItem(e.Item, e.Game))
	}
	return CollectionView{
		UserID:     userID,
		Collection: items,
		TotalGames: len(items),
	}
}

// SerializeItem maps one membership record and its catalog record to the
// item-level response shape. Labels default to an empty sequence when the
// upstream record omits them.
func SerializeItem(item MembershipRecord, game CatalogRecord) ItemView {
	labels := item.Labels
	if labels == nil {
		labels = []json.RawMessage{}
	}
	return ItemView{
		ID:              game.ID,
		Name:            game.Name,
		Rating:          game.Rating,
		DifficultyScore: game.DifficultyScore,
		GameCategories:  game.GameCategories,
		GameTypes:       game.GameTypes,
		Players:         rangeView(game.MinPlayers, game.MaxPlayers),
		PlayingTime:     playingTimeView(game.MinPlayingTime, game.MaxPlayingTime),
		Notes:           item.Notes,
		Labels:          labels,
		UserRating:      item.UserRating,
		ModifiedAt:      item.ModifiedAt,
	}
}

// GameView is the catalog-only shape of a game, used where no membership
// fields apply (e.g. the review response).
type GameView struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Rating          *float64         `json:"rating,omitempty"`
	DifficultyScore *float64         `json:"difficulty_score,omitempty"`
	GameCategories  []string         `json:"game_categories,omitempty"`
	GameTypes       []string         `json:"game_types,omitempty"`
	Players         *PlayersView     `json:"players,omitempty"`
	PlayingTime     *PlayingTimeView `json:"playing_time,omitempty"`
}

// SerializeGame maps a catalog record to its catalog-only view.
func SerializeGame(game CatalogRecord) GameView {
	return GameView{
		ID:              game.ID,
		Name:            game.Name,
		Rating:          game.Rating,
		DifficultyScore: game.DifficultyScore,
		GameCategories:  game.GameCategories,
		GameTypes:       game.GameTypes,
		Players:         rangeView(game.MinPlayers, game.MaxPlayers),
		PlayingTime:     playingTimeView(game.MinPlayingTime, game.MaxPlayingTime),
	}
}

// SerializeReview maps a review to its response shape.
func SerializeReview(review Review) ReviewView {
	return ReviewView{
		ID:         review.ID,
		GameID:     review.GameID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		CreatedAt:  review.CreatedAt,
	}
}

func rangeView(min, max *int) *PlayersView {
	if min == nil && max == nil {
		return nil
	}
	return &PlayersView{Min: min, Max: max}
}

func playingTimeView(min, max *int) *PlayingTimeView {
	if min == nil && max == nil {
		return nil
	}
	return &PlayingTimeView{Min: min, Max: max}
}
