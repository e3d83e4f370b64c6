package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/sarthakcode01/hacksetu-be/forms"
	"github.com/sarthakcode01/hacksetu-be/httpx"
	"github.com/sarthakcode01/hacksetu-be/log"
	"github.com/sarthakcode01/hacksetu-be/model"
	"github.com/sarthakcode01/hacksetu-be/routes/middlewares"
)

func formIdParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
		return uuid.Nil, false
	}
	return id, true
}

func CreateForm(store *forms.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		def := model.FormDef{}
		err := render.DecodeJSON(r.Body, &def)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		form, err := store.CreateForm(r.Context(), middlewares.Actor(r), def)
		if err != nil {
			httpx.WriteDomainError(w, r, "forms.create", err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"form": form,
		})
	}
}

func ListOwnedForms(store *forms.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := store.ListOwned(r.Context(), middlewares.Actor(r))
		if err != nil {
			httpx.WriteDomainError(w, r, "forms.list_owned", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"forms": summaries,
		})
	}
}

func ListOpenForms(store *forms.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		open, err := store.ListOpen(r.Context(), middlewares.Actor(r))
		if err != nil {
			httpx.WriteDomainError(w, r, "forms.list_open", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"forms": open,
		})
	}
}

func GetFormById(store *forms.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, ok := formIdParam(w, r)
		if !ok {
			return
		}

		form, err := store.GetForm(r.Context(), middlewares.Actor(r), formId)
		if err != nil {
			httpx.WriteDomainError(w, r, "forms.get", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"form": form,
		})
	}
}

func UpdateFormMetadata(store *forms.Store) http.HandlerFunc {
	type metadata struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		formId, ok := formIdParam(w, r)
		if !ok {
			return
		}

		meta := metadata{}
		err := render.DecodeJSON(r.Body, &meta)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		form, err := store.UpdateMetadata(r.Context(), middlewares.Actor(r), formId, meta.Title, meta.Description)
		if err != nil {
			httpx.WriteDomainError(w, r, "forms.update_metadata", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"form": form,
		})
	}
}

func DeleteForm(store *forms.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, ok := formIdParam(w, r)
		if !ok {
			return
		}

		err := store.Delete(r.Context(), middlewares.Actor(r), formId)
		if err != nil {
			httpx.WriteDomainError(w, r, "forms.delete", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func SetFormStatus(store *forms.Store) http.HandlerFunc {
	type statusChange struct {
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		formId, ok := formIdParam(w, r)
		if !ok {
			return
		}

		change := statusChange{}
		err := render.DecodeJSON(r.Body, &change)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		target, ok := model.ParseStatus(change.Status)
		if !ok {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body.status")
			return
		}

		form, err := store.SetStatus(r.Context(), middlewares.Actor(r), formId, target)
		if err != nil {
			httpx.WriteDomainError(w, r, "forms.set_status", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"form": form,
		})
	}
}
