package apis

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/meeplehaven/viewsrv/internal/common/httpx"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/collection"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/viewcommon"
)

func (h *Handlers) getCollection(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	userID := viewcommon.GetUserID(ctx)

	filters, err := parseFilters(r)
	if err != nil {
		return nil, err
	}

	entries, apperr := h.manager.Fetch(ctx, userID, filters)
	if apperr != nil {
		return nil, apperr
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   collection.SerializeCollection(userID, entries),
	}, nil
}

type addGameReq struct {
	GameID     *int64   `json:"gameId" validate:"required"`
	Notes      *string  `json:"notes"`
	LabelNames []string `json:"labelNames"`
}

func (h *Handlers) addGame(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	userID := viewcommon.GetUserID(ctx)

	req := &addGameReq{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	if err := V().Struct(req); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("invalid add game request")
		return nil, httpx.ErrInvalidRequest("gameId is required")
	}

	entry, apperr := h.manager.Add(ctx, userID, *req.GameID, req.Notes, req.LabelNames)
	if apperr != nil {
		return nil, apperr
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Response:   collection.SerializeItem(entry.Item, entry.Game),
	}, nil
}

type removeGameRsp struct {
	Status string `json:"status"`
	GameID int64  `json:"game_id"`
}

func (h *Handlers) removeGame(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	userID := viewcommon.GetUserID(ctx)

	gameID, err := strconv.ParseInt(chi.URLParam(r, "gameID"), 10, 64)
	if err != nil {
		return nil, httpx.ErrInvalidRequest("invalid game ID")
	}

	if apperr := h.manager.Remove(ctx, userID, gameID); apperr != nil {
		return nil, apperr
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: removeGameRsp{
			Status: "removed",
			GameID: gameID,
		},
	}, nil
}

type createReviewReq struct {
	GameID     *int64   `json:"gameId" validate:"required"`
	Rating     *float64 `json:"rating" validate:"required"`
	ReviewText string   `json:"reviewText" validate:"required"`
}

type createReviewRsp struct {
	Review collection.ReviewView `json:"review"`
	Game   collection.GameView   `json:"game"`
}

func (h *Handlers) createReview(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	userID := viewcommon.GetUserID(ctx)

	req := &createReviewReq{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	if err := V().Struct(req); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("invalid create review request")
		return nil, httpx.ErrInvalidRequest("gameId, rating and reviewText are required")
	}

	created, apperr := h.manager.CreateReview(ctx, userID, *req.GameID, *req.Rating, req.ReviewText)
	if apperr != nil {
		return nil, apperr
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Response: createReviewRsp{
			Review: collection.SerializeReview(created.Review),
			Game:   collection.SerializeGame(created.Game),
		},
	}, nil
}

// parseFilters reads the collection fetch filters from the query string.
// Absent parameters leave the corresponding filter unset.
func parseFilters(r *http.Request) (collection.CollectionFilters, error) {
	q := r.URL.Query()
	filters := collection.CollectionFilters{}

	if v := q.Get("min_user_rating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, httpx.ErrInvalidRequest("invalid min_user_rating")
		}
		filters.MinUserRating = &f
	}
	if v := q.Get("player_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filters, httpx.ErrInvalidRequest("invalid player_count")
		}
		filters.PlayerCount = &n
	}
	if v := q.Get("max_playing_time"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filters, httpx.ErrInvalidRequest("invalid max_playing_time")
		}
		filters.MaxPlayingTime = &n
	}
	if v := q.Get("game_types"); v != "" {
		var types []string
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
		filters.GameTypes = types
	}
	if v := q.Get("min_rating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, httpx.ErrInvalidRequest("invalid min_rating")
		}
		filters.MinRating = &f
	}

	return filters, nil
}
