package collection

import (
	"context"
	"fmt"

	"github.com/meeplehaven/viewsrv/internal/common/apperrors"
)

// Add validates the game against the catalog and then adds it to the
// user's collection. A catalog miss fails with ErrGameNotFound before any
// write is issued. On success the created membership record is returned
// together with the validated catalog record, saving a second catalog
// round-trip at serialization time.
func (m *Manager) Add(ctx context.Context, userID string, gameID int64, notes *string, labelNames []string) (*EnrichedEntry, apperrors.Error) {
	game, err := m.validateGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if labelNames == nil {
		labelNames = []string{}
	}

	item, err := m.users.AddGame(ctx, userID, gameID, notes, labelNames)
	if err != nil {
		return nil, err
	}

	return &EnrichedEntry{Item: *item, Game: *game}, nil
}

// validateGame looks up the game in the catalog and converts a not-found
// signal into ErrGameNotFound naming the offending ID.
func (m *Manager) validateGame(ctx context.Context, gameID int64) (*CatalogRecord, apperrors.Error) {
	game, err := m.catalog.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound.Msg(fmt.Sprintf("game with ID %d not found", gameID))
	}
	return game, nil
}
