package extract

import (
	"encoding/csv"
	"io"
	"iter"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/logging"
	"github.com/arthur-debert/pricat/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"
)

// CSVReader reads a delimited file row by row
type CSVReader struct {
	meta      FileMeta
	schema    Schema
	delimiter rune
	encoding  encoding.Encoding
	logger    zerolog.Logger
}

// NewCSVReader checks that meta points to an existing .csv file and returns
// a reader for it. The header is validated against schema when rows are
// read.
func NewCSVReader(meta FileMeta, schema Schema) (*CSVReader, error) {
	meta = meta.withDefaults()

	info, err := os.Stat(meta.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "File not found: %s", meta.Path).
				WithDetail("path", meta.Path)
		}
		return nil, errors.Wrapf(err, errors.ErrCSVRead, "Cannot access file: %s", meta.Path).
			WithDetail("path", meta.Path)
	}
	if !info.Mode().IsRegular() || filepath.Ext(meta.Path) != ".csv" {
		return nil, errors.Newf(errors.ErrCSVRead, "File is not a CSV file: %s", meta.Path).
			WithDetail("path", meta.Path)
	}

	delimiter, size := utf8.DecodeRuneInString(meta.Delimiter)
	if delimiter == utf8.RuneError || size != len(meta.Delimiter) {
		return nil, errors.Newf(errors.ErrCSVRead, "Delimiter must be a single character, got %q", meta.Delimiter).
			WithDetail("delimiter", meta.Delimiter)
	}

	enc, err := lookupEncoding(meta.Encoding)
	if err != nil {
		return nil, err
	}

	return &CSVReader{
		meta:      meta,
		schema:    schema,
		delimiter: delimiter,
		encoding:  enc,
		logger:    logging.GetLogger("extract.csv").With().Str("path", meta.Path).Logger(),
	}, nil
}

// Meta returns the effective file description
func (r *CSVReader) Meta() FileMeta {
	return r.meta
}

// Rows yields one row per record. Records shorter than the header are
// padded with empty values, fields beyond the header are dropped. Iteration
// stops at the first error, which is yielded with a nil row.
func (r *CSVReader) Rows() iter.Seq2[*types.Row, error] {
	return func(yield func(*types.Row, error) bool) {
		file, err := os.Open(r.meta.Path)
		if err != nil {
			yield(nil, errors.Wrapf(err, errors.ErrCSVRead, "Cannot open file: %s", r.meta.Path).
				WithDetail("path", r.meta.Path))
			return
		}
		defer func() { _ = file.Close() }()

		reader := csv.NewReader(decode(file, r.encoding))
		reader.Comma = r.delimiter
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true

		header, err := reader.Read()
		if err == io.EOF || (err == nil && len(header) == 0) {
			yield(nil, errors.New(errors.ErrCSVSchema, "Header fieldnames are missing").
				WithDetail("path", r.meta.Path))
			return
		}
		if err != nil {
			yield(nil, r.readError(err))
			return
		}
		header = append([]string(nil), header...)

		if !r.schema.accepts(header) {
			yield(nil, errors.Newf(errors.ErrCSVSchema, "Missing required fields in CSV file: %s", r.meta.Path).
				WithDetail("path", r.meta.Path).
				WithDetail("schema", r.schema.String()))
			return
		}

		r.logger.Debug().
			Strs("header", header).
			Str("schema", r.schema.Name).
			Msg("CSV header accepted")

		count := 0
		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				yield(nil, r.readError(err))
				return
			}

			count++
			if !yield(recordToRow(header, record), nil) {
				return
			}
		}

		r.logger.Debug().Int("rows", count).Msg("CSV file read")
	}
}

func (r *CSVReader) readError(err error) error {
	e := errors.Wrapf(err, errors.ErrCSVRead, "Cannot read CSV file: %s", r.meta.Path).
		WithDetail("path", r.meta.Path)
	if pe, ok := err.(*csv.ParseError); ok {
		e.WithDetail("line", pe.Line)
	}
	return e
}

func recordToRow(header, record []string) *types.Row {
	row := types.NewRow()
	for i, field := range header {
		value := ""
		if i < len(record) {
			value = record[i]
		}
		row.Set(field, value)
	}
	return row
}

// ReadAll collects every row of the reader
func ReadAll(r *CSVReader) ([]*types.Row, error) {
	rows := make([]*types.Row, 0)
	for row, err := range r.Rows() {
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
