package middleware

import (
	"context"

	"github.com/heartmarshall/userdash-backend/internal/domain"
	"github.com/heartmarshall/userdash-backend/pkg/ctxutil"
)

// RequireOwner returns domain.ErrUnauthorized if the context carries no user
// identity, and domain.ErrForbidden if the identity is neither the given user
// nor an admin. Use in REST handlers, not as HTTP middleware.
func RequireOwner(ctx context.Context, userID int64) error {
	authID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if authID != userID && !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
