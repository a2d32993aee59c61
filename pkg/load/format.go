// Package load serializes a catalog to an output document.
package load

import (
	"strings"

	"github.com/arthur-debert/pricat/pkg/errors"
)

// Format is an output document format
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatXML  Format = "xml"
)

// Formats lists the supported formats, default first
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatXML}

// ParseFormat converts a format name to a Format. The empty string selects
// JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "Unknown output format: %s", name).
		WithDetail("format", name).
		WithDetail("supported", FormatNames())
}

// FormatNames returns the supported format names
func FormatNames() []string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return names
}

func (f Format) String() string {
	return string(f)
}
