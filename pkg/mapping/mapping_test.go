// Test Type: Unit Test
// Description: Tests for the mapping rule compiler

package mapping_test

import (
	"testing"

	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/mapping"
	"github.com/arthur-debert/pricat/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mappingRow(source, sourceType, destination, destinationType string) *types.Row {
	return types.RowOf(
		"source", source,
		"destination", destination,
		"source_type", sourceType,
		"destination_type", destinationType,
	)
}

func unit(source, sourceType, destination, destinationType string) mapping.Unit {
	return mapping.Unit{
		Source:      mapping.MapAttr{Value: source, Type: sourceType},
		Destination: mapping.MapAttr{Value: destination, Type: destinationType},
	}
}

func TestUnitFromRow(t *testing.T) {
	t.Run("reads_all_four_columns", func(t *testing.T) {
		u, err := mapping.UnitFromRow(mappingRow("1", "color_code", "black", "color"), mapping.DefaultColumns())
		require.NoError(t, err)
		assert.Equal(t, unit("1", "color_code", "black", "color"), u)
	})

	t.Run("custom_columns", func(t *testing.T) {
		row := types.RowOf("from", "1", "from_field", "color_code", "to", "black", "to_field", "color")
		cols := mapping.Columns{Source: "from", SourceType: "from_field", Destination: "to", DestinationType: "to_field"}

		u, err := mapping.UnitFromRow(row, cols)
		require.NoError(t, err)
		assert.Equal(t, unit("1", "color_code", "black", "color"), u)
	})

	t.Run("missing_column", func(t *testing.T) {
		row := types.RowOf("source", "1", "destination", "black", "destination_type", "color")

		_, err := mapping.UnitFromRow(row, mapping.DefaultColumns())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRowFieldMissing))
		assert.Contains(t, err.Error(), "source_type")
	})
}

func TestUnit_Kind(t *testing.T) {
	tests := []struct {
		name string
		unit mapping.Unit
		want mapping.Kind
	}{
		{"direct", unit("1", "color_code", "black", "color"), mapping.KindDirect},
		{"composite", unit("EU|36", "size_group_code|size_code", "European size 36", "size"), mapping.KindComposite},
		{"glob", unit("*", "price|currency", "*", "price_currency"), mapping.KindGlob},
		{"wildcard_source_only_is_direct", unit("*", "price", "any", "x"), mapping.KindDirect},
		{"glob_wins_over_composite", unit("*", "a|b", "*", "ab"), mapping.KindGlob},
		{"pipe_in_source_value_with_wildcard_destination", unit("a|b", "x|y", "*", "z"), mapping.KindComposite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.unit.Kind())
		})
	}
}

func TestUnit_Conditions(t *testing.T) {
	t.Run("parallel_lists", func(t *testing.T) {
		conds, err := unit("1500|36", "price|size_code", "1500 for 36 size", "price_size_code").Conditions()
		require.NoError(t, err)
		assert.Equal(t, []mapping.Condition{
			{Field: "price", Value: "1500"},
			{Field: "size_code", Value: "36"},
		}, conds)
	})

	t.Run("mismatched_lengths", func(t *testing.T) {
		_, err := unit("1500|36|x", "price|size_code", "bad", "bad").Conditions()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMappingInvalid))
	})
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name          string
		rows          []*types.Row
		wantDirect    []mapping.Unit
		wantComposite []mapping.Unit
		wantGlob      []mapping.Unit
	}{
		{
			name:       "one_mapping_color",
			rows:       []*types.Row{mappingRow("1", "color_code", "black", "color")},
			wantDirect: []mapping.Unit{unit("1", "color_code", "black", "color")},
		},
		{
			name: "two_mappings_colors",
			rows: []*types.Row{
				mappingRow("1", "color_code", "black", "color"),
				mappingRow("2", "color_code", "green", "color"),
			},
			wantDirect: []mapping.Unit{
				unit("1", "color_code", "black", "color"),
				unit("2", "color_code", "green", "color"),
			},
		},
		{
			name:          "one_mapping_combined_size",
			rows:          []*types.Row{mappingRow("EU|36", "size_group_code|size_code", "European size 36", "size")},
			wantComposite: []mapping.Unit{unit("EU|36", "size_group_code|size_code", "European size 36", "size")},
		},
		{
			name:     "one_glob_item",
			rows:     []*types.Row{mappingRow("*", "price|currency", "*", "price_currency")},
			wantGlob: []mapping.Unit{unit("*", "price|currency", "*", "price_currency")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := mapping.Build(tt.rows)
			require.NoError(t, err)

			var direct, composite, glob []mapping.Unit
			for _, r := range m.Rules() {
				switch r.Kind {
				case mapping.KindDirect:
					direct = append(direct, r.Unit)
				case mapping.KindComposite:
					composite = append(composite, r.Unit)
				case mapping.KindGlob:
					glob = append(glob, r.Unit)
				}
			}

			assert.Equal(t, tt.wantDirect, direct)
			assert.Equal(t, tt.wantComposite, composite)
			assert.Equal(t, tt.wantGlob, glob)
			assert.Equal(t, tt.wantComposite, nilIfEmpty(m.CompositeRules()))
			assert.Equal(t, tt.wantGlob, nilIfEmpty(m.GlobRules()))
		})
	}
}

func nilIfEmpty(units []mapping.Unit) []mapping.Unit {
	if len(units) == 0 {
		return nil
	}
	return units
}

func TestBuild_Keys(t *testing.T) {
	m, err := mapping.Build([]*types.Row{
		mappingRow("1", "color_code", "black", "color"),
		mappingRow("EU|36", "size_group_code|size_code", "European size 36", "size"),
		mappingRow("*", "price|currency", "*", "price_currency"),
	})
	require.NoError(t, err)

	keys := make([]string, 0)
	for _, r := range m.Rules() {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, []string{"1.color_code", "EU|36.size_group_code|size_code", "*.price|currency"}, keys)
	assert.Equal(t, mapping.Counts{Direct: 1, Composite: 1, Glob: 1}, m.Counts())
	assert.Equal(t, 3, m.Counts().Total())
}

func TestBuild_EmptyInput(t *testing.T) {
	m, err := mapping.Build(nil)
	assert.Nil(t, m)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMappingBuild))
}

func TestBuild_MissingColumn(t *testing.T) {
	rows := []*types.Row{
		mappingRow("1", "color_code", "black", "color"),
		types.RowOf("source", "2", "source_type", "color_code"),
	}

	_, err := mapping.Build(rows)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRowFieldMissing))
	assert.Equal(t, 2, errors.GetErrorDetails(err)["row"])
}

func TestBuild_Duplicates(t *testing.T) {
	rows := []*types.Row{
		mappingRow("1", "color_code", "black", "color"),
		mappingRow("2", "color_code", "green", "color"),
		mappingRow("1", "color_code", "noir", "colour"),
	}

	t.Run("last_write_wins", func(t *testing.T) {
		m, err := mapping.Build(rows)
		require.NoError(t, err)

		u, ok := m.Get("1", "color_code")
		require.True(t, ok)
		assert.Equal(t, unit("1", "color_code", "noir", "colour"), u)

		// the replaced rule keeps its original position
		assert.Equal(t, "1.color_code", m.Rules()[0].Key)
		assert.Equal(t, 2, m.Counts().Direct)
	})

	t.Run("strict_mode_rejects", func(t *testing.T) {
		_, err := mapping.Build(rows, mapping.WithStrictDuplicates(true))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMappingDuplicate))
	})

	t.Run("same_key_different_kind_is_not_a_duplicate", func(t *testing.T) {
		_, err := mapping.Build([]*types.Row{
			mappingRow("*", "a|b", "*", "ab"),
			mappingRow("*", "a|b", "x", "ab"),
		}, mapping.WithStrictDuplicates(true))
		assert.NoError(t, err)
	})
}

func TestMapping_Get(t *testing.T) {
	m, err := mapping.Build([]*types.Row{
		mappingRow("1", "color_code", "black", "color"),
		mappingRow("EU|36", "size_group_code|size_code", "European size 36", "size"),
	})
	require.NoError(t, err)

	u, ok := m.Get("1", "color_code")
	assert.True(t, ok)
	assert.Equal(t, "black", u.Destination.Value)

	_, ok = m.Get("2", "color_code")
	assert.False(t, ok)

	// composite rules are not reachable through direct lookup
	_, ok = m.Get("EU|36", "size_group_code|size_code")
	assert.False(t, ok)
}

func TestMapping_Validate(t *testing.T) {
	ok, err := mapping.Build([]*types.Row{mappingRow("EU|36", "size_group_code|size_code", "European size 36", "size")})
	require.NoError(t, err)
	assert.NoError(t, ok.Validate())

	bad, err := mapping.Build([]*types.Row{mappingRow("EU|36", "size_code", "European size 36", "size")})
	require.NoError(t, err, "malformed composite rules are only detected on use")
	err = bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMappingInvalid))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "direct", mapping.KindDirect.String())
	assert.Equal(t, "composite", mapping.KindComposite.String())
	assert.Equal(t, "glob", mapping.KindGlob.String())
	assert.Equal(t, "kind(7)", mapping.Kind(7).String())
}
