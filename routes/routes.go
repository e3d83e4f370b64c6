package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sarthakcode01/hacksetu-be/app"
	"github.com/sarthakcode01/hacksetu-be/forms"
	"github.com/sarthakcode01/hacksetu-be/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	return root
}

func apiRouter(app app.App) http.Handler {
	store := forms.NewStore(app.DB)

	api := chi.NewRouter()

	api.Post("/register", Register(app))
	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	api.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticated(app.TokenSecret))

		// forms, owner side
		r.Post("/forms", CreateForm(store))
		r.Get("/forms", ListOwnedForms(store))
		r.Put("/forms/{id}", UpdateFormMetadata(store))
		r.Delete("/forms/{id}", DeleteForm(store))
		r.Put("/forms/{id}/status", SetFormStatus(store))
		r.Get("/forms/{id}/responses", ListFormResponses(store))

		// forms, respondent side
		r.Get("/forms/open", ListOpenForms(store))
		r.Get("/forms/{id}", GetFormById(store))
		r.Post("/forms/{id}/responses", SubmitResponse(store))

		r.Get("/profile", GetProfile(store))
		r.Put("/profile", UpdateProfile(store))
	})

	return api
}
