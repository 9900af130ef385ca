package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/service"
	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
	"github.com/aussiebroadwan/bloggr/pkg/httpx"
	"github.com/aussiebroadwan/bloggr/pkg/idx"
	"github.com/aussiebroadwan/bloggr/pkg/slogx"
)

// writeError maps service and validation errors onto responses. Errors
// it does not recognise are logged and become a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *blogsdk.ValidationError
	if errors.As(err, &ve) {
		ve.WriteError(w)
		return
	}

	switch {
	case errors.Is(err, service.ErrLoginTaken), errors.Is(err, service.ErrEmailTaken):
		taken(err).WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidRefresh),
		errors.Is(err, service.ErrStaleSession),
		errors.Is(err, service.ErrSessionNotFound):
		blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
	case errors.Is(err, service.ErrNotCommentOwner):
		blogsdk.WriteStatus(w, r, http.StatusForbidden)
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrBlogNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		blogsdk.WriteStatus(w, r, http.StatusNotFound)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		blogsdk.WriteStatus(w, r, http.StatusInternalServerError)
	}
}

// taken reports each collided unique field.
func taken(err error) *blogsdk.ValidationError {
	ve := &blogsdk.ValidationError{}
	if errors.Is(err, service.ErrLoginTaken) {
		ve.Errors = append(ve.Errors, blogsdk.FieldError{Message: "login already exists", Field: "login"})
	}
	if errors.Is(err, service.ErrEmailTaken) {
		ve.Errors = append(ve.Errors, blogsdk.FieldError{Message: "email already exists", Field: "email"})
	}
	return ve
}

// decode reads a JSON body, writing a 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		slogx.FromContext(r.Context()).Debug("invalid request body", "err", err)
		blogsdk.NewValidationError("body", "request body must be a single JSON object").WriteError(w)
		return false
	}
	return true
}

func noContent(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) }

// pathID returns the {id} path value. Every stored entity is keyed by a
// ULID, so anything else is answered with 404 without a store lookup.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		blogsdk.WriteStatus(w, r, http.StatusNotFound)
		return "", false
	}
	return id.String(), true
}
