// Package report renders valuation tables for the console or a file.
package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Format selects how reports are rendered
type Format string

const (
	// FormatText prints one record per line: KEY {'actual': a, 'potential': p, 'probability': q}
	FormatText Format = "text"
	// FormatTable prints aligned, styled columns.
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// Formats lists the accepted format names.
func Formats() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// ParseFormat parses a format name.
func ParseFormat(name string) (Format, error) {
	norm := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range formats {
		if f == norm {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(Formats(), ", "))
}

// formatValue renders a float the way the text format has always shown it:
// shortest round-trip digits with a trailing ".0" on whole numbers.
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}
