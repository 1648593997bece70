// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/jsonstore/pkg/errors"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// RenderValue renders the record value as is
func (r *Renderer) RenderValue(key string, value any) error {
	return r.encoder.Encode(value)
}

// RenderKeys renders keys as a JSON array
func (r *Renderer) RenderKeys(keys []string) error {
	if keys == nil {
		keys = []string{}
	}
	return r.encoder.Encode(keys)
}

// RenderEvent renders a change as one JSON object
func (r *Renderer) RenderEvent(op, key string) error {
	return r.encoder.Encode(map[string]string{
		"op":  op,
		"key": key,
	})
}

// RenderResult renders any result type as JSON
func (r *Renderer) RenderResult(result any) error {
	return r.encoder.Encode(result)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]any{
		"error": err.Error(),
		"code":  errors.GetErrorCode(err),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
