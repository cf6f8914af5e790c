package server

import (
	"errors"
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/tubefeed/pkg/media"
	"github.com/umputun/tubefeed/pkg/repository"
	"github.com/umputun/tubefeed/pkg/tracker"
)

// renderFailure maps storage and domain errors to status codes and response bodies.
// field is used for conflicts and broken references, e.g. "name" or "food_formula".
func renderFailure(w http.ResponseWriter, r *http.Request, err error, field string) {
	var verr ValidationError
	switch {
	case errors.As(err, &verr):
		renderJSON(w, r, http.StatusBadRequest, verr)
	case errors.Is(err, repository.ErrNotFound):
		renderJSON(w, r, http.StatusNotFound, map[string]string{detailKey: "Not found."})
	case errors.Is(err, tracker.ErrInvalidTransition):
		renderError(w, r, err, http.StatusBadRequest)
	case errors.Is(err, repository.ErrConflict):
		renderJSON(w, r, http.StatusBadRequest, ValidationError{field: {"An entry with this " + field + " already exists."}})
	case errors.Is(err, repository.ErrReference):
		renderJSON(w, r, http.StatusBadRequest, ValidationError{field: {"Invalid pk - object does not exist."}})
	case errors.Is(err, media.ErrUnsupported):
		renderJSON(w, r, http.StatusBadRequest, ValidationError{"image": {"Upload a valid image. The file you uploaded was either not an image or a corrupted image."}})
	case errors.Is(err, media.ErrTooLarge):
		renderJSON(w, r, http.StatusBadRequest, ValidationError{"image": {"The uploaded image is too large."}})
	default:
		lgr.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
		renderError(w, r, errors.New("internal server error"), http.StatusInternalServerError)
	}
}
