package server

import (
	"net/http"

	"github.com/go-chi/render"
)

// ErrResponse is the JSON body of every failed request.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	ErrorText     string   `json:"error,omitempty"` // application-level error message
	ErrValidation []string `json:"validation,omitempty"`
}

// Render sets the response status.
func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// ErrInvalidRequest is a 400 for undecodable or inconsistent input.
func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

// ErrValidation is a 400 listing every failed field.
func ErrValidation(err error, fields []string) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  fields,
	}
}

// ErrNotFound is a 404 for unknown resources.
func ErrNotFound(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusNotFound,
		StatusText:     "Resource not found.",
		ErrorText:      err.Error(),
	}
}

// ErrUnprocessable is a 422 for searches aborted by the expansion cap,
// the search timeout or the client.
func ErrUnprocessable(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		StatusText:     "Search aborted.",
		ErrorText:      err.Error(),
	}
}

// ErrTooLarge is a 422 for grids above the service's cell limit.
func ErrTooLarge(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		StatusText:     "Grid too large.",
		ErrorText:      err.Error(),
	}
}

// ErrInternal is a 500.
func ErrInternal(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}
