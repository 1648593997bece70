// Package yaml provides machine-readable YAML output
package yaml

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/jsonstore/pkg/errors"
)

// Renderer writes one YAML document per call
type Renderer struct {
	output io.Writer
}

// New creates a new YAML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

func (r *Renderer) encode(v any) error {
	enc := yaml.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// RenderValue renders the record value
func (r *Renderer) RenderValue(key string, value any) error {
	return r.encode(value)
}

// RenderKeys renders keys as a YAML sequence
func (r *Renderer) RenderKeys(keys []string) error {
	if keys == nil {
		keys = []string{}
	}
	return r.encode(keys)
}

// RenderEvent renders a change as a YAML mapping
func (r *Renderer) RenderEvent(op, key string) error {
	return r.encode(map[string]string{"op": op, "key": key})
}

// RenderResult renders any result type as YAML
func (r *Renderer) RenderResult(result any) error {
	return r.encode(result)
}

// RenderError renders an error as YAML
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]any{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encode(errorObj)
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}
