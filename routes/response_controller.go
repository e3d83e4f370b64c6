package routes

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/sarthakcode01/hacksetu-be/forms"
	"github.com/sarthakcode01/hacksetu-be/httpx"
	"github.com/sarthakcode01/hacksetu-be/log"
	"github.com/sarthakcode01/hacksetu-be/model"
	"github.com/sarthakcode01/hacksetu-be/routes/middlewares"
)

func SubmitResponse(store *forms.Store) http.HandlerFunc {
	type submission struct {
		Answers []model.AnswerInput `json:"answers"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		formId, ok := formIdParam(w, r)
		if !ok {
			return
		}

		sub := submission{}
		err := render.DecodeJSON(r.Body, &sub)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		responseId, err := store.SubmitResponse(r.Context(), middlewares.Actor(r), formId, sub.Answers)
		if err != nil {
			httpx.WriteDomainError(w, r, "responses.submit", err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"response_id": responseId,
		})
	}
}

func ListFormResponses(store *forms.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, ok := formIdParam(w, r)
		if !ok {
			return
		}

		responses, err := store.ListResponses(r.Context(), middlewares.Actor(r), formId)
		if err != nil {
			httpx.WriteDomainError(w, r, "responses.list", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"total_responses": len(responses),
			"responses":       responses,
		})
	}
}
