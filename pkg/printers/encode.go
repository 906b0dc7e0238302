// Package printers formats dotcal results for the terminal and for machines.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Format names a machine readable encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("printers: unknown output format %q", s)
}

// Encode writes v to w in format f.
func Encode(w io.Writer, f Format, v interface{}) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("printers: yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("printers: json: %w", err)
		}
		return nil
	}
}

// ColorEnabled reports whether f is a terminal that should get color.
func ColorEnabled(f *os.File) bool {
	if termenv.EnvNoColor() {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
