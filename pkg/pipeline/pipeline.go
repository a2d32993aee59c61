// Package pipeline runs the extract, transform, group and load stages that
// turn a source table and a mapping table into a catalog document.
package pipeline

import (
	"bytes"
	"io"
	"time"

	"github.com/arthur-debert/pricat/pkg/catalog"
	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/extract"
	"github.com/arthur-debert/pricat/pkg/load"
	"github.com/arthur-debert/pricat/pkg/logging"
	"github.com/arthur-debert/pricat/pkg/mapping"
	"github.com/arthur-debert/pricat/pkg/transform"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configures a run
type Options struct {
	Source   extract.FileMeta
	Mappings extract.FileMeta

	// Columns names the mapping-table columns, defaults when zero
	Columns          mapping.Columns
	StrictDuplicates bool

	Format  load.Format
	Encoder load.Options
	// Output receives the encoded catalog. Nothing is written unless the
	// whole run succeeds.
	Output io.Writer
}

// Result describes a successful run
type Result struct {
	RunID    string
	Catalog  *catalog.Catalog
	Rules    mapping.Counts
	Rows     int
	Duration time.Duration
}

// Run reads the mapping table, compiles it, streams the source table through
// the transformer into a catalog, hoists shared attributes and encodes the
// catalog to opts.Output.
func Run(opts Options) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := logging.GetLogger("pipeline").With().Str("runId", runID).Logger()

	if opts.Output == nil {
		return nil, errors.New(errors.ErrInvalidInput, "pipeline output is not set")
	}
	if opts.Columns == (mapping.Columns{}) {
		opts.Columns = mapping.DefaultColumns()
	}

	logger.Info().
		Str("source", opts.Source.Path).
		Str("mappings", opts.Mappings.Path).
		Str("format", string(opts.Format)).
		Msg("Pipeline started")

	m, err := Compile(opts.Mappings, opts.Columns, opts.StrictDuplicates, logger)
	if err != nil {
		return nil, err
	}

	c, rows, err := buildCatalog(opts.Source, m, logger)
	if err != nil {
		return nil, err
	}

	done := logging.LogOperationStart(logger, "consolidate")
	catalog.ConsolidateCommonAttributes(c)
	done()

	// Encode fully before writing so that a failed run leaves no partial
	// document behind
	done = logging.LogOperationStart(logger, "encode")
	var buf bytes.Buffer
	if err := load.Encode(&buf, c, opts.Format, opts.Encoder); err != nil {
		return nil, err
	}
	if _, err := buf.WriteTo(opts.Output); err != nil {
		return nil, errors.Wrap(err, errors.ErrEncode, "Failed to write catalog")
	}
	done()

	result := &Result{
		RunID:    runID,
		Catalog:  c,
		Rules:    m.Counts(),
		Rows:     rows,
		Duration: time.Since(start),
	}

	stats := c.Stats()
	logger.Info().
		Int("rows", rows).
		Int("articles", stats.Articles).
		Int("variations", stats.Variations).
		Int("commonAttributes", stats.CommonAttributes).
		Dur("duration", result.Duration).
		Msg("Pipeline completed")

	return result, nil
}

// Compile reads a mapping table and builds its rule index
func Compile(meta extract.FileMeta, cols mapping.Columns, strict bool, logger zerolog.Logger) (*mapping.Mapping, error) {
	done := logging.LogOperationStart(logger, "compile")
	defer done()

	rows, err := extract.LoadMappingRows(meta, cols)
	if err != nil {
		return nil, err
	}

	return mapping.Build(rows,
		mapping.WithColumns(cols),
		mapping.WithStrictDuplicates(strict),
	)
}

func buildCatalog(meta extract.FileMeta, m *mapping.Mapping, logger zerolog.Logger) (*catalog.Catalog, int, error) {
	done := logging.LogOperationStart(logger, "transform")
	defer done()

	reader, err := extract.NewCSVReader(meta, extract.SourceSchema)
	if err != nil {
		return nil, 0, err
	}

	c := catalog.New()
	count := 0
	for row, err := range reader.Rows() {
		if err != nil {
			return nil, count, err
		}
		count++

		out, err := transform.Row(row, m)
		if err != nil {
			return nil, count, withRow(err, count)
		}
		if _, err := c.Add(out); err != nil {
			return nil, count, withRow(err, count)
		}

		logger.Trace().Int("row", count).Int("fields", out.Len()).Msg("Row transformed")
	}

	return c, count, nil
}

// withRow records the 1-based data row an error occurred on
func withRow(err error, row int) error {
	if pe, ok := err.(*errors.PricatError); ok {
		return pe.WithDetail("row", row)
	}
	return err
}
