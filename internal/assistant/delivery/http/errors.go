package http

import (
	"errors"
	"net/http"

	"porter-saathi/internal/assistant"
	pkgErrors "porter-saathi/pkg/errors"
)

var (
	errDriverNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, "driver not found")
	errInvalidDriver   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid driver")
	errInvalidDate     = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date")
	errInvalidEarnings = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid earnings")
	errMissingID       = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrDriverNotFound):
		return errDriverNotFound
	case errors.Is(err, assistant.ErrInvalidDriver):
		return errInvalidDriver
	case errors.Is(err, assistant.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, assistant.ErrInvalidEarnings):
		return errInvalidEarnings
	default:
		return pkgErrors.ErrInternalServerError
	}
}
