package middleware

import (
	"context"
	"net/http"
	"wordquest/app/session"
)

type ctxKey int

const userIDKey ctxKey = 1

// SessionGate protects the dashboard and admin routes. An anonymous request
// is redirected to the login page rather than rejected.
type SessionGate struct{ Sessions *session.Store }

func (g *SessionGate) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := g.Sessions.Current(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserID(ctx context.Context) (uint, bool) {
	if v := ctx.Value(userIDKey); v != nil {
		if id, ok := v.(uint); ok {
			return id, true
		}
	}
	return 0, false
}
