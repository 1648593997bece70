// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/jsonstore/pkg/errors"
	"github.com/arthur-debert/jsonstore/pkg/style"
	"github.com/arthur-debert/jsonstore/pkg/ui/text"
)

// Renderer provides rich terminal output using lipgloss styles and pterm
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderValue renders the key as a heading followed by the value
func (r *Renderer) RenderValue(key string, value any) error {
	s, err := text.FormatValue(value)
	if err != nil {
		return err
	}
	if key != "" {
		if _, err := fmt.Fprintln(r.output, style.KeyStyle.Render(key)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(r.output, style.ValueStyle.Render(s))
	return err
}

// RenderKeys renders the keys as a table
func (r *Renderer) RenderKeys(keys []string) error {
	if len(keys) == 0 {
		_, err := fmt.Fprintln(r.output, style.MutedStyle.Render("No records"))
		return err
	}

	data := pterm.TableData{{"#", "Key"}}
	for i, key := range keys {
		data = append(data, []string{fmt.Sprint(i + 1), key})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, table)
	return err
}

// RenderEvent renders a change with an indicator for its kind
func (r *Renderer) RenderEvent(op, key string) error {
	indicator := style.SuccessIndicator
	if op == "remove" {
		indicator = style.RemoveIndicator
	}
	_, err := fmt.Fprintf(r.output, "%s %s %s\n", indicator, style.MutedStyle.Render(op), style.KeyStyle.Render(key))
	return err
}

// RenderResult renders any other result
func (r *Renderer) RenderResult(result any) error {
	switch v := result.(type) {
	case bool:
		indicator := style.ErrorIndicator
		if v {
			indicator = style.SuccessIndicator
		}
		_, err := fmt.Fprintf(r.output, "%s %t\n", indicator, v)
		return err
	case string:
		_, err := fmt.Fprintln(r.output, style.PathStyle.Render(v))
		return err
	default:
		return r.RenderValue("", result)
	}
}

// RenderError renders an error with its code
func (r *Renderer) RenderError(err error) error {
	if err == nil {
		return nil
	}

	var line string
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		line = fmt.Sprintf("%s Error [%s]: %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(code)),
			err.Error())
	} else {
		line = fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
	}
	_, werr := fmt.Fprintln(r.output, style.ErrorIndicator+" "+line)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", style.InfoIndicator, style.NormalStyle.Render(msg))
	return err
}
