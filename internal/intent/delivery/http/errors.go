package http

import (
	"intent-coordinator/internal/intent"
	pkgErrors "intent-coordinator/pkg/errors"
)

// mapError renders the public message of the error's kind. Causes stay in
// the logs.
func (h *handler) mapError(err error) error {
	p := intent.PublicError(intent.KindOf(err))
	return pkgErrors.NewHTTPError(p.Status, p.Code, p.Message)
}
