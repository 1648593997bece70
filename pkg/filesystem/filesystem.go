package filesystem

import (
	"strings"

	"github.com/arthur-debert/jsonstore/pkg/errors"
	"github.com/arthur-debert/jsonstore/pkg/registry"
	"github.com/arthur-debert/jsonstore/pkg/types"
)

// Backend names accepted by New.
const (
	BackendOS      = "os"
	BackendMemory  = "memory"
	BackendSynthFS = "synthfs"
)

// Constructor builds a fresh filesystem for one backend.
type Constructor func() types.FS

var backends = registry.New[Constructor]()

func init() {
	registry.MustRegister[Constructor](backends, BackendOS, NewOS)
	registry.MustRegister[Constructor](backends, BackendMemory, NewMemory)
	registry.MustRegister[Constructor](backends, BackendSynthFS, NewSynthFS)
}

// New returns the filesystem registered under backend. An empty name
// selects the OS filesystem.
func New(backend string) (types.FS, error) {
	name := backend
	if strings.TrimSpace(name) == "" {
		name = BackendOS
	}
	ctor, err := backends.Get(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrInvalidArgument, "unknown filesystem backend %q", backend).
			WithDetail("available", Backends())
	}
	return ctor(), nil
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	return backends.List()
}
