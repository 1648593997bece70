// Package text provides plain text output without any styling
package text

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// FormatValue renders value as indented JSON text.
func FormatValue(value any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// RenderValue prints the value as JSON so it can be piped back into set
func (r *Renderer) RenderValue(key string, value any) error {
	s, err := FormatValue(value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, s)
	return err
}

// RenderKeys prints one key per line
func (r *Renderer) RenderKeys(keys []string) error {
	for _, key := range keys {
		if _, err := fmt.Fprintln(r.output, key); err != nil {
			return err
		}
	}
	return nil
}

// RenderEvent prints the operation and key separated by a tab
func (r *Renderer) RenderEvent(op, key string) error {
	_, err := fmt.Fprintf(r.output, "%s\t%s\n", op, key)
	return err
}

// RenderResult prints strings, booleans and numbers directly and
// everything else as JSON
func (r *Renderer) RenderResult(result any) error {
	switch v := result.(type) {
	case string, bool, int, int64, float64:
		_, err := fmt.Fprintln(r.output, v)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(r.output, v.String())
		return err
	default:
		return r.RenderValue("", result)
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
