package collection

import (
	"context"

	"github.com/meeplehaven/viewsrv/internal/common/apperrors"
)

// CollectionClient is the interface to the user service, which owns
// collection membership, notes, labels, user ratings, and reviews.
// The caller's identity travels with every call and is forwarded upstream.
type CollectionClient interface {
	// GetCollection fetches the user's raw collection.
	GetCollection(ctx context.Context, userID string) ([]MembershipRecord, apperrors.Error)

	// AddGame adds a game to the user's collection. labelNames must not be
	// nil; callers default it to an empty slice.
	AddGame(ctx context.Context, userID string, gameID int64, notes *string, labelNames []string) (*MembershipRecord, apperrors.Error)

	// RemoveGame removes a game from the user's collection. Upstream errors
	// are surfaced unchanged, including upstream not-found.
	RemoveGame(ctx context.Context, userID string, gameID int64) apperrors.Error

	// CreateReview creates a review for a game on behalf of the user.
	CreateReview(ctx context.Context, userID string, gameID int64, rating float64, reviewText string) (*Review, apperrors.Error)
}

// CatalogClient is the interface to the game discovery service, which owns
// canonical game metadata.
type CatalogClient interface {
	// GetByID looks up a single game. Returns (nil, nil) when the catalog
	// reports the game as not found; errors are reserved for transport and
	// malformed-response failures.
	GetByID(ctx context.Context, gameID int64) (*CatalogRecord, apperrors.Error)

	// GetByIDs looks up a set of games, optionally narrowed by query-time
	// filters. Games filtered out or unknown upstream are simply absent
	// from the result.
	GetByIDs(ctx context.Context, ids []int64, filters CatalogFilters) ([]CatalogRecord, apperrors.Error)
}
