package collection

import (
	"context"

	"github.com/meeplehaven/viewsrv/internal/common/apperrors"
)

// CreateReview validates the game against the catalog and then creates a
// review through the user service. Same validate-then-write shape as Add:
// a catalog miss fails with ErrGameNotFound before any write is issued.
func (m *Manager) CreateReview(ctx context.Context, userID string, gameID int64, rating float64, reviewText string) (*CreatedReview, apperrors.Error) {
	game, err := m.validateGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	review, err := m.users.CreateReview(ctx, userID, gameID, rating, reviewText)
	if err != nil {
		return nil, err
	}

	return &CreatedReview{Review: *review, Game: *game}, nil
}
