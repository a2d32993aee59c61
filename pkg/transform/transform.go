// Package transform applies compiled mapping rules to source rows.
package transform

import (
	"strings"

	"github.com/arthur-debert/pricat/pkg/mapping"
	"github.com/arthur-debert/pricat/pkg/types"
)

// strategy applies one rule kind for a single source field, writing into out.
// out accumulates across strategies and fields, so later strategies observe
// what earlier ones wrote.
type strategy func(out *types.Row, field, value string, m *mapping.Mapping) error

// strategies run in this order for every field
var strategies = []strategy{
	applyDirect,
	applyComposite,
	applyGlob,
}

// Row returns a copy of src extended with every field the rules produce.
// Fields are only added or overwritten, never removed, and src is not
// modified.
func Row(src *types.Row, m *mapping.Mapping) (*types.Row, error) {
	out := types.Clone(src)
	if src == nil {
		return out, nil
	}

	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		for _, apply := range strategies {
			if err := apply(out, pair.Key, pair.Value, m); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// applyDirect maps a single field/value pair through the direct index
func applyDirect(out *types.Row, field, value string, m *mapping.Mapping) error {
	if unit, ok := m.Get(value, field); ok {
		out.Set(unit.Destination.Type, unit.Destination.Value)
	}
	return nil
}

// applyComposite sets the destination of every composite rule whose
// conditions all hold on the accumulated row
func applyComposite(out *types.Row, _, _ string, m *mapping.Mapping) error {
	for _, unit := range m.CompositeRules() {
		conds, err := unit.Conditions()
		if err != nil {
			return err
		}
		if matchesAll(out, conds) {
			out.Set(unit.Destination.Type, unit.Destination.Value)
		}
	}
	return nil
}

func matchesAll(row *types.Row, conds []mapping.Condition) bool {
	for _, c := range conds {
		if v, ok := row.Get(c.Field); !ok || v != c.Value {
			return false
		}
	}
	return true
}

// applyGlob joins the listed fields with a space into the destination field.
// A rule with any absent or empty field is skipped.
func applyGlob(out *types.Row, _, _ string, m *mapping.Mapping) error {
	for _, unit := range m.GlobRules() {
		fields := unit.GlobFields()
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			v, ok := out.Get(f)
			if !ok || v == "" {
				parts = nil
				break
			}
			parts = append(parts, v)
		}
		if parts == nil {
			continue
		}
		out.Set(unit.Destination.Type, strings.Join(parts, " "))
	}
	return nil
}
