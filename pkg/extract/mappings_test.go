// Test Type: Unit Test
// Description: Tests for loading mapping tables from CSV and YAML

package extract_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/extract"
	"github.com/arthur-debert/pricat/pkg/mapping"
	"github.com/arthur-debert/pricat/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMappingRows_CSV(t *testing.T) {
	path := writeFile(t, "mappings.csv", []byte(
		"source;destination;source_type;destination_type\n"+
			"winter;Winter;season;season\n"+
			"EU|36;European size 36;size_group_code|size_code;size\n"))

	rows, err := extract.LoadMappingRows(extract.FileMeta{Path: path}, mapping.DefaultColumns())
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, map[string]string{
		"source":           "EU|36",
		"destination":      "European size 36",
		"source_type":      "size_group_code|size_code",
		"destination_type": "size",
	}, types.ToMap(rows[1]))
}

func TestLoadMappingRows_CSVSchemaUsesColumns(t *testing.T) {
	path := writeFile(t, "mappings.csv", []byte("from;to\n1;black\n"))
	cols := mapping.Columns{Source: "from", SourceType: "from_type", Destination: "to", DestinationType: "to_type"}

	_, err := extract.LoadMappingRows(extract.FileMeta{Path: path}, cols)
	assert.NoError(t, err)

	_, err = extract.LoadMappingRows(extract.FileMeta{Path: path}, mapping.DefaultColumns())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCSVSchema))
}

func TestLoadMappingRows_YAML(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "top_level_list",
			content: `
- source: 36
  source_type: size_code
  destination: 36 EUR
  destination_type: size
- source: "*"
  source_type: color_code|size_code
  destination: "*"
  destination_type: color_code_size_code
`,
		},
		{
			name: "mappings_key",
			content: `
mappings:
  - source: 36
    source_type: size_code
    destination: 36 EUR
    destination_type: size
  - source: "*"
    source_type: color_code|size_code
    destination: "*"
    destination_type: color_code_size_code
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "mappings.yaml", []byte(tt.content))

			rows, err := extract.LoadMappingRows(extract.FileMeta{Path: path}, mapping.DefaultColumns())
			require.NoError(t, err)

			require.Len(t, rows, 2)
			assert.Equal(t, []types.Item{
				{Key: "source", Value: "36"},
				{Key: "source_type", Value: "size_code"},
				{Key: "destination", Value: "36 EUR"},
				{Key: "destination_type", Value: "size"},
			}, types.Items(rows[0]))
			assert.Equal(t, "*", types.ToMap(rows[1])["destination"])
		})
	}
}

func TestLoadMappingRows_YAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    errors.ErrorCode
	}{
		{"not_a_list", "m.yaml", "source: 1\n", errors.ErrMappingBuild},
		{"rule_not_an_object", "m.yml", "- just a string\n", errors.ErrMappingBuild},
		{"nested_value", "m.yaml", "- source: [1, 2]\n", errors.ErrMappingBuild},
		{"broken_yaml", "m.yaml", "- source: \"unterminated\n", errors.ErrMappingBuild},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, []byte(tt.content))
			_, err := extract.LoadMappingRows(extract.FileMeta{Path: path}, mapping.DefaultColumns())
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), err.Error())
		})
	}

	t.Run("missing_file", func(t *testing.T) {
		_, err := extract.LoadMappingRows(extract.FileMeta{Path: filepath.Join(t.TempDir(), "m.yaml")}, mapping.DefaultColumns())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})

	t.Run("empty_file_has_no_rules", func(t *testing.T) {
		path := writeFile(t, "m.yaml", []byte(""))
		rows, err := extract.LoadMappingRows(extract.FileMeta{Path: path}, mapping.DefaultColumns())
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
