// Package viewcommon provides context management utilities and version
// constants shared across the view service packages.
package viewcommon

import (
	"context"
)

// ctxKeyType represents the type for all context keys
type ctxKeyType string

const ctxUserIdKey ctxKeyType = "ViewUserId"

// WithUserID sets the caller's user ID in the provided context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxUserIdKey, userID)
}

// GetUserID retrieves the caller's user ID from the context.
// Returns an empty string if no user ID is set.
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(ctxUserIdKey).(string); ok {
		return userID
	}
	return ""
}
