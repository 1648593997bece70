package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/jsonstore/pkg/types"
)

// EnvProvider reads the root from an environment variable.
type EnvProvider struct {
	Var string
}

// DefaultRoot implements types.RootProvider
func (p EnvProvider) DefaultRoot() (string, error) {
	value := strings.TrimSpace(os.Getenv(p.Var))
	if value == "" {
		return "", fmt.Errorf("%s is not set", p.Var)
	}
	return expandHome(value), nil
}

// XDGProvider places records in the per-user application data directory.
type XDGProvider struct {
	AppName string
}

// DefaultRoot implements types.RootProvider
func (p XDGProvider) DefaultRoot() (string, error) {
	if xdg.DataHome == "" {
		return "", fmt.Errorf("XDG data home is not available")
	}
	return filepath.Join(xdg.DataHome, p.AppName), nil
}

// ExecutableProvider places records in a directory next to the running
// executable.
type ExecutableProvider struct {
	Dir string
}

// DefaultRoot implements types.RootProvider
func (p ExecutableProvider) DefaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), p.Dir), nil
}

// StaticProvider always answers with the same directory.
type StaticProvider string

// DefaultRoot implements types.RootProvider
func (p StaticProvider) DefaultRoot() (string, error) {
	if strings.TrimSpace(string(p)) == "" {
		return "", fmt.Errorf("static root is empty")
	}
	return string(p), nil
}

// ChainProvider asks each provider in order and returns the first answer.
type ChainProvider []types.RootProvider

// DefaultRoot implements types.RootProvider
func (c ChainProvider) DefaultRoot() (string, error) {
	var errs []string
	for _, p := range c {
		root, err := p.DefaultRoot()
		if err == nil {
			return root, nil
		}
		errs = append(errs, err.Error())
	}
	return "", fmt.Errorf("no default root available: %s", strings.Join(errs, "; "))
}

// DefaultProvider returns the lookup chain used when no root is configured.
func DefaultProvider(appName string) types.RootProvider {
	return ChainProvider{
		EnvProvider{Var: EnvDataDir},
		XDGProvider{AppName: appName},
		ExecutableProvider{Dir: appName},
	}
}
