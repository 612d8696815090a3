package http

import (
	"errors"
	"net/http"

	"intent-coordinator/internal/token"
	pkgErrors "intent-coordinator/pkg/errors"
)

var errRegistryUnavailable = pkgErrors.NewHTTPError(http.StatusInternalServerError, "TOKEN_REGISTRY_UNAVAILABLE", "Token registry unavailable.")

// mapError hides paths and parse details of registry failures.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, token.ErrRegistryUnavailable):
		return errRegistryUnavailable
	default:
		return err
	}
}
