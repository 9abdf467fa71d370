// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RouteResolution is the destination decided after a successful sign-in.
// Degraded is set when a role or listing lookup failed and the resolution
// fell through to a safe default instead of blocking the sign-in.
type RouteResolution struct {
	Path     string
	Degraded bool
}

// RouteUsecase decides where an account lands right after authentication.
type RouteUsecase interface {
	// ResolveRoute picks the post-sign-in destination for the user.
	// storedPath is an optional return path remembered before the sign-in
	// redirect; it only applies to accounts without a special destination.
	ResolveRoute(ctx context.Context, userID uuid.UUID, storedPath string) RouteResolution
}
