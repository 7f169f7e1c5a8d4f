package collection

import (
	"context"

	"github.com/meeplehaven/viewsrv/internal/common/apperrors"
	"github.com/rs/zerolog/log"
)

// Fetch retrieves the user's collection, applies the caller-supplied
// filters, and joins each entry with its catalog record. Entries whose
// game ID has no catalog match are dropped from the result; catalog-side
// filtering and catalog deletions remove entries this way without raising
// an error. Output preserves the collection's original order.
func (m *Manager) Fetch(ctx context.Context, userID string, filters CollectionFilters) ([]EnrichedEntry, apperrors.Error) {
	records, err := m.users.GetCollection(ctx, userID)
	if err != nil {
		return nil, err
	}

	records = filterByUserRating(records, filters.MinUserRating)

	ids := extractGameIds(records)
	if len(ids) == 0 {
		return []EnrichedEntry{}, nil
	}

	games, err := m.catalog.GetByIDs(ctx, ids, filters.CatalogFilters())
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]CatalogRecord, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	entries := make([]EnrichedEntry, 0, len(records))
	for _, rec := range records {
		game, ok := byID[rec.GameID]
		if !ok {
			log.Ctx(ctx).Warn().
				Str("user_id", userID).
				Int64("game_id", rec.GameID).
				Msg("game not found in discovery service")
			continue
		}
		entries = append(entries, EnrichedEntry{Item: rec, Game: game})
	}
	return entries, nil
}

// filterByUserRating retains records whose user rating is present and at
// least min. Records without a rating never pass the filter. A nil min
// disables the filter.
func filterByUserRating(records []MembershipRecord, min *float64) []MembershipRecord {
	if min == nil {
		return records
	}
	filtered := make([]MembershipRecord, 0, len(records))
	for _, rec := range records {
		if rec.UserRating != nil && *rec.UserRating >= *min {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// extractGameIds returns the game IDs of the records in their original
// order. Duplicates are allowed; the catalog lookup tolerates them.
func extractGameIds(records []MembershipRecord) []int64 {
	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.GameID)
	}
	return ids
}
