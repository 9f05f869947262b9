package middleware

import (
	"context"

	"csvvault/app/models"
)

// CurrentUser returns the account resolved by RequireAuth/RequireAdmin, or
// nil outside a gated handler.
func CurrentUser(ctx context.Context) *models.User {
	if v := ctx.Value(userKey); v != nil {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
