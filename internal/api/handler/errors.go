package handler

import (
	"net/http"

	"github.com/mcoot/dategetter/internal/api/apierr"
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NotFound handles requests that match no route
func NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, apierr.NewNotFoundError())
}

// MethodNotAllowed handles requests to a known route with the wrong method
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	WriteError(w, apierr.NewMethodNotAllowedError(r.Method))
}

// Panic writes the JSON internal error envelope after a recovered panic
func Panic(w http.ResponseWriter, _ *http.Request, _ any) {
	WriteError(w, apierr.NewInternalError())
}
