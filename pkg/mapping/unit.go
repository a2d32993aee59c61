package mapping

import (
	"strings"

	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/types"
)

const (
	// Wildcard marks both values of a glob rule
	Wildcard = "*"
	// Separator joins the parts of composite and glob rules
	Separator = "|"
)

// Columns names the mapping-table columns a rule is read from
type Columns struct {
	Source          string `koanf:"source" toml:"source"`
	SourceType      string `koanf:"source_type" toml:"source_type"`
	Destination     string `koanf:"destination" toml:"destination"`
	DestinationType string `koanf:"destination_type" toml:"destination_type"`
}

// DefaultColumns returns the column names of the standard mappings file
func DefaultColumns() Columns {
	return Columns{
		Source:          "source",
		SourceType:      "source_type",
		Destination:     "destination",
		DestinationType: "destination_type",
	}
}

// Names returns the column names in header order
func (c Columns) Names() []string {
	return []string{c.Source, c.SourceType, c.Destination, c.DestinationType}
}

// MapAttr is a value bound to the field ("type") it belongs to
type MapAttr struct {
	Value string `json:"value" yaml:"value"`
	Type  string `json:"type" yaml:"type"`
}

// Unit is a single mapping rule: source attribute to destination attribute
type Unit struct {
	Source      MapAttr `json:"source" yaml:"source"`
	Destination MapAttr `json:"destination" yaml:"destination"`
}

// Condition is one field/value pair a composite rule requires
type Condition struct {
	Field string
	Value string
}

// UnitFromRow reads a rule from a mapping-table row
func UnitFromRow(row *types.Row, cols Columns) (Unit, error) {
	fields := make([]string, 0, 4)
	for _, name := range cols.Names() {
		v, ok := row.Get(name)
		if !ok {
			return Unit{}, errors.Newf(errors.ErrRowFieldMissing,
				"Row does not contain field: %s", name).
				WithDetail("field", name)
		}
		fields = append(fields, v)
	}

	return Unit{
		Source:      MapAttr{Value: fields[0], Type: fields[1]},
		Destination: MapAttr{Value: fields[2], Type: fields[3]},
	}, nil
}

// Key returns the collection key of the rule
func (u Unit) Key() string {
	return Key(u.Source.Value, u.Source.Type)
}

// Key builds the composite lookup key for a source value and field
func Key(sourceValue, sourceType string) string {
	return sourceValue + "." + sourceType
}

// Kind reports which collection the rule belongs to
func (u Unit) Kind() Kind {
	switch {
	case u.Source.Value == Wildcard && u.Destination.Value == Wildcard:
		return KindGlob
	case strings.Contains(u.Source.Value, Separator):
		return KindComposite
	default:
		return KindDirect
	}
}

// Conditions splits a composite rule into its field/value pairs. Lists of
// different length mean the mappings file is malformed.
func (u Unit) Conditions() ([]Condition, error) {
	values := strings.Split(u.Source.Value, Separator)
	fields := strings.Split(u.Source.Type, Separator)

	if len(values) != len(fields) {
		return nil, errors.New(errors.ErrMappingInvalid,
			"Mapping is incorrectly configured. Check mappings file").
			WithDetail("rule", u.Key()).
			WithDetail("values", len(values)).
			WithDetail("fields", len(fields))
	}

	conds := make([]Condition, len(values))
	for i := range values {
		conds[i] = Condition{Field: fields[i], Value: values[i]}
	}
	return conds, nil
}

// GlobFields returns the fields a glob rule concatenates, in order
func (u Unit) GlobFields() []string {
	return strings.Split(u.Source.Type, Separator)
}
