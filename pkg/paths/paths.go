package paths

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/arthur-debert/jsonstore/pkg/errors"
	"github.com/arthur-debert/jsonstore/pkg/types"
)

// Environment variable names
const (
	// EnvDataDir overrides the default root directory
	EnvDataDir = "JSONSTORE_DATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// DefaultAppName names the per-application directory under the XDG data
// home and next to the executable.
const DefaultAppName = "jsonstore"

// Resolver maps keys to record files under a root directory. It is safe for
// concurrent use.
type Resolver struct {
	mu   sync.RWMutex
	root string
}

// New creates a Resolver rooted at root. An empty root falls back to
// DefaultProvider(DefaultAppName).
func New(root string) (*Resolver, error) {
	if strings.TrimSpace(root) == "" {
		return NewWithProvider(DefaultProvider(DefaultAppName))
	}
	abs, err := absolute(root)
	if err != nil {
		return nil, err
	}
	return &Resolver{root: abs}, nil
}

// NewWithProvider creates a Resolver rooted at the provider's default root.
func NewWithProvider(provider types.RootProvider) (*Resolver, error) {
	if provider == nil {
		return nil, errors.New(errors.ErrInvalidArgument, "root provider is nil")
	}
	root, err := provider.DefaultRoot()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidArgument, "failed to determine default root directory")
	}
	abs, err := absolute(root)
	if err != nil {
		return nil, err
	}
	return &Resolver{root: abs}, nil
}

// Root returns the current root directory.
func (r *Resolver) Root() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.root
}

// SetRoot changes the root directory. With replace the root becomes
// directory; otherwise directory is appended beneath the current root, even
// when it is absolute. No I/O is performed and the directory need not exist.
func (r *Resolver) SetRoot(directory string, replace bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := nextRoot(r.root, directory, replace)
	if err != nil {
		return err
	}
	r.root = next
	return nil
}

// WithRoot returns a new Resolver with the root changed as SetRoot would,
// leaving r untouched.
func (r *Resolver) WithRoot(directory string, replace bool) (*Resolver, error) {
	next, err := nextRoot(r.Root(), directory, replace)
	if err != nil {
		return nil, err
	}
	return &Resolver{root: next}, nil
}

// RecordPath returns the absolute path of the file holding key.
func (r *Resolver) RecordPath(key string) (string, error) {
	name, err := RecordFileName(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(r.Root(), name), nil
}

func nextRoot(current, directory string, replace bool) (string, error) {
	if strings.TrimSpace(directory) == "" {
		return "", errors.New(errors.ErrInvalidArgument, "directory must be a non-empty path")
	}
	if replace {
		return absolute(directory)
	}
	return filepath.Join(current, directory), nil
}

func absolute(path string) (string, error) {
	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidArgument, "failed to get absolute path for %q", path)
	}
	return abs, nil
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
