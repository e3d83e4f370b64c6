package httpx

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/sarthakcode01/hacksetu-be/log"
	"github.com/sarthakcode01/hacksetu-be/model"
)

// Will log an error, and send an HTTP response with status 500 and default text
func LogInternalError(w http.ResponseWriter, code string, err error) {
	log.Errorf("%s: %s", code, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Will log an error code at the given level, and send
// an HTTP response with status and default text
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	log.Log(level, code)
	http.Error(w, http.StatusText(status), status)
}

// WriteDomainError translates a core error value into an HTTP response.
// Status codes live here and nowhere else; the core only ever returns the
// structured kinds from the model package.
func WriteDomainError(w http.ResponseWriter, r *http.Request, code string, err error) {
	if msgs, ok := model.ValidationErrors(err); ok {
		log.Debugf("%s: validation: %v", code, msgs)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]any{"errors": msgs})
		return
	}

	var status int
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, model.ErrAlreadyResponded),
		errors.Is(err, model.ErrInvalidTransition),
		errors.Is(err, model.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, model.ErrFormNotLive),
		errors.Is(err, model.ErrQuestionMismatch),
		errors.Is(err, model.ErrInvalidAnswer):
		status = http.StatusBadRequest
	default:
		LogInternalError(w, code, err)
		return
	}

	log.Debugf("%s: %s", code, err)
	render.Status(r, status)
	render.JSON(w, r, map[string]any{"error": err.Error()})
}
