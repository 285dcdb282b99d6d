package classify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how a report is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted format names.
var Formats = []string{string(FormatText), string(FormatJSON), string(FormatYAML)}

// ParseFormat resolves a format name. "yml" is accepted for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid format: %s (permitted options: %v)", s, Formats)
	}
}

// Render writes r to w. The whole report is encoded before anything is
// written, so a failed encode leaves w untouched.
func Render(w io.Writer, r *Report, f Format) error {
	if r == nil {
		return errors.New("report required")
	}

	var buf bytes.Buffer
	switch f {
	case FormatText, "":
		fmt.Fprintf(&buf, "%s (score: %d, threshold: %d)\n", r.Verdict, r.Score, r.Threshold)
	case FormatJSON:
		e := json.NewEncoder(&buf)
		e.SetIndent("", "  ")
		if err := e.Encode(r); err != nil {
			return fmt.Errorf("error encoding report: %w", err)
		}
	case FormatYAML:
		e := yaml.NewEncoder(&buf)
		if err := e.Encode(r); err != nil {
			return fmt.Errorf("error encoding report: %w", err)
		}
		if err := e.Close(); err != nil {
			return fmt.Errorf("error encoding report: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", f)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}
