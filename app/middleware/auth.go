package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "csvvault/app/jwt"
	"csvvault/app/models"
	"csvvault/app/policy"
)

type ctxKey int

const userKey ctxKey = 1

// UserFinder resolves a verified token subject to the persisted account.
type UserFinder interface {
	FindByUsername(username string) (*models.User, error)
}

type Auth struct {
	Signer *jwtutil.Signer
	Users  UserFinder
}

// resolve runs the per-request gate: bearer token → verified subject →
// persisted user → active check. A missing, bad or orphaned token is always
// 401; only a disabled account that proved its identity gets 403.
func (a *Auth) resolve(r *http.Request) (*models.User, int) {
	authz := r.Header.Get("Authorization")
	if authz == "" {
		return nil, http.StatusUnauthorized
	}
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, http.StatusUnauthorized
	}
	subject, err := a.Signer.Verify(parts[1])
	if err != nil {
		return nil, http.StatusUnauthorized
	}
	u, err := a.Users.FindByUsername(subject)
	if err != nil {
		// A valid token whose subject no longer exists looks exactly like a
		// bad token to the caller.
		return nil, http.StatusUnauthorized
	}
	if !u.IsActive {
		return nil, http.StatusForbidden
	}
	return u, 0
}

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, status := a.resolve(r)
		if u == nil {
			w.WriteHeader(status)
			return
		}
		ctx := context.WithValue(r.Context(), userKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, status := a.resolve(r)
		if u == nil {
			w.WriteHeader(status)
			return
		}
		if !policy.RequireAdmin(u) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		ctx := context.WithValue(r.Context(), userKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
