package llmprovider

import (
	"context"
	"sync"

	"intent-coordinator/pkg/log"
)

// Handle owns a lazily built Provider. The provider is constructed on the
// first Get and shared afterwards; a construction error is sticky as well.
type Handle struct {
	get func() (Provider, error)
}

// NewHandle returns a handle that builds its provider from cfg on first use.
func NewHandle(cfg ProviderConfig, l log.Logger) *Handle {
	return NewHandleFunc(func() (Provider, error) {
		p, err := NewProvider(cfg)
		if err != nil {
			l.Warnf(context.Background(), "llmprovider.NewHandle: %v", err)
			return nil, err
		}
		l.Infof(context.Background(), "llmprovider.NewHandle: provider=%s model=%s", p.Name(), p.Model())
		return p, nil
	})
}

// NewHandleFunc returns a handle around an arbitrary constructor.
func NewHandleFunc(build func() (Provider, error)) *Handle {
	return &Handle{get: sync.OnceValues(build)}
}

// Get returns the shared provider, building it on the first call.
func (h *Handle) Get() (Provider, error) {
	return h.get()
}
