package extract

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/logging"
	"github.com/arthur-debert/pricat/pkg/mapping"
	"github.com/arthur-debert/pricat/pkg/types"
	"gopkg.in/yaml.v3"
)

// LoadMappingRows reads every row of a mapping table. Files ending in .yaml
// or .yml hold a list of rule objects, either at the top level or under a
// "mappings" key:
//
//	mappings:
//	  - source: "1"
//	    source_type: color_code
//	    destination: black
//	    destination_type: color
//
// Any other path is read as CSV.
func LoadMappingRows(meta FileMeta, cols mapping.Columns) ([]*types.Row, error) {
	switch strings.ToLower(filepath.Ext(meta.Path)) {
	case ".yaml", ".yml":
		return loadYAMLMappings(meta.Path)
	}

	reader, err := NewCSVReader(meta, MappingSchema(cols))
	if err != nil {
		return nil, err
	}
	return ReadAll(reader)
}

func loadYAMLMappings(path string) ([]*types.Row, error) {
	logger := logging.GetLogger("extract.yaml").With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "File not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrCSVRead, "Cannot read mappings file: %s", path).
			WithDetail("path", path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrMappingBuild, "Failed to parse mapping YAML: %s", path).
			WithDetail("path", path)
	}

	list, perr := ruleList(&doc)
	if perr != nil {
		return nil, perr.WithDetail("path", path)
	}

	rows := make([]*types.Row, 0, len(list.Content))
	for i, item := range list.Content {
		row, perr := nodeToRow(item)
		if perr != nil {
			return nil, perr.
				WithDetail("path", path).
				WithDetail("row", i+1)
		}
		rows = append(rows, row)
	}

	logger.Debug().Int("rows", len(rows)).Msg("YAML mappings read")
	return rows, nil
}

// ruleList finds the sequence of rules in a parsed document
func ruleList(doc *yaml.Node) (*yaml.Node, *errors.PricatError) {
	node := doc
	if node.Kind == 0 || node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return &yaml.Node{Kind: yaml.SequenceNode}, nil
		}
		node = node.Content[0]
	}

	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "mappings" {
				node = node.Content[i+1]
				break
			}
		}
	}

	if node.Kind != yaml.SequenceNode {
		return nil, errors.New(errors.ErrMappingBuild, "Mapping YAML must be a list of rules")
	}
	return node, nil
}

// nodeToRow converts a rule object to a row, keeping field order. Scalars
// are taken verbatim so that 36 stays "36".
func nodeToRow(node *yaml.Node) (*types.Row, *errors.PricatError) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrMappingBuild, "Mapping rule must be an object")
	}

	row := types.NewRow()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, errors.Newf(errors.ErrMappingBuild, "Mapping rule field %q must be a scalar", key.Value).
				WithDetail("field", key.Value)
		}
		row.Set(key.Value, value.Value)
	}
	return row, nil
}
