package middlewares

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/oauth"
	"github.com/google/uuid"
	"github.com/sarthakcode01/hacksetu-be/model"
)

type contextKey struct{ name string }

var actorKey = contextKey{"actor"}

// Authenticated verifies the bearer token and turns its claims into an
// explicit model.Actor on the request context. Handlers never read identity
// from anywhere else.
func Authenticated(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return chi.Chain(oauth.Authorize(secret, nil), extractActor).Handler(next)
	}
}

func extractActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(oauth.ClaimsContext).(map[string]string)
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		id, err := uuid.Parse(claims["user_id"])
		if err != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		role, ok := model.ParseRole(claims["role"])
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		actor := model.Actor{ID: id, Role: role}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
	})
}

// Actor returns the authenticated actor put on the context by Authenticated.
func Actor(r *http.Request) model.Actor {
	actor, _ := r.Context().Value(actorKey).(model.Actor)
	return actor
}
