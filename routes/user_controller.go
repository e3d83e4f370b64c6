package routes

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/sarthakcode01/hacksetu-be/forms"
	"github.com/sarthakcode01/hacksetu-be/httpx"
	"github.com/sarthakcode01/hacksetu-be/log"
	"github.com/sarthakcode01/hacksetu-be/routes/middlewares"
)

func GetProfile(store *forms.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := store.GetProfile(r.Context(), middlewares.Actor(r).ID)
		if err != nil {
			httpx.WriteDomainError(w, r, "users.get_profile", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"user": user,
		})
	}
}

func UpdateProfile(store *forms.Store) http.HandlerFunc {
	type profileChange struct {
		FullName string `json:"full_name"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		change := profileChange{}
		err := render.DecodeJSON(r.Body, &change)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		user, err := store.UpdateProfile(r.Context(), middlewares.Actor(r).ID, change.FullName)
		if err != nil {
			httpx.WriteDomainError(w, r, "users.update_profile", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"user": user,
		})
	}
}
