package middleware

import (
	"context"
	"net/http"

	"github.com/minishop/minishop-go/internal/crypto"
)

// SessionCookie is the name of the signed identity cookie.
const SessionCookie = "session"

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated actor resolved from the session cookie.
type Identity struct {
	UserID   int64
	Username string
}

// Session returns middleware that resolves the session cookie into an Identity
// on the request context. A missing, invalid or expired cookie leaves the
// request anonymous; it never rejects.
func Session(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := crypto.ValidateSessionToken(cookie.Value, secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, Identity{
				UserID:   claims.UserID,
				Username: claims.Username,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLogin returns middleware that redirects anonymous requests to the
// login form. The wrapped handler never runs for an anonymous request, and
// there is no return-to-target after login.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityFromContext extracts the authenticated identity from the request context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
