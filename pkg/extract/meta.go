// Package extract reads source and mapping tables into ordered rows.
//
// CSV files are decoded from their configured character encoding, their
// header is checked against a Schema, and each record is yielded as a
// types.Row keyed by header field, in header order.
package extract

import (
	"strings"

	"github.com/arthur-debert/pricat/pkg/catalog"
	"github.com/arthur-debert/pricat/pkg/mapping"
)

const (
	// DefaultDelimiter separates CSV fields when none is configured
	DefaultDelimiter = ";"
	// DefaultEncoding is the character encoding assumed for input files
	DefaultEncoding = "utf-8"
)

// FileMeta describes an input file
type FileMeta struct {
	Path      string
	Delimiter string
	Encoding  string
}

func (m FileMeta) withDefaults() FileMeta {
	if m.Delimiter == "" {
		m.Delimiter = DefaultDelimiter
	}
	if m.Encoding == "" {
		m.Encoding = DefaultEncoding
	}
	return m
}

// Schema lists the fields a table header is expected to carry. A header is
// accepted when it contains at least one of them.
type Schema struct {
	Name   string
	Fields []string
}

// SourceSchema is the schema of the source (pricat) table
var SourceSchema = Schema{Name: "source", Fields: []string{catalog.KeyField}}

// MappingSchema returns the schema of a mapping table using the given column
// names
func MappingSchema(cols mapping.Columns) Schema {
	return Schema{Name: "mapping", Fields: cols.Names()}
}

// accepts reports whether header contains at least one schema field
func (s Schema) accepts(header []string) bool {
	for _, field := range s.Fields {
		for _, h := range header {
			if h == field {
				return true
			}
		}
	}
	return false
}

func (s Schema) String() string {
	return s.Name + "{" + strings.Join(s.Fields, ", ") + "}"
}
