package collection

import (
	"context"

	"github.com/meeplehaven/viewsrv/internal/common/apperrors"
)

// Remove deletes a game from the user's collection. No catalog validation
// is performed; the user service's own view of membership decides the
// outcome, and its errors are surfaced unchanged.
func (m *Manager) Remove(ctx context.Context, userID string, gameID int64) apperrors.Error {
	return m.users.RemoveGame(ctx, userID, gameID)
}
