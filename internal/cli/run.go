package cli

import (
	"io"

	"github.com/arthur-debert/pricat/pkg/config"
	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/extract"
	"github.com/arthur-debert/pricat/pkg/load"
	"github.com/arthur-debert/pricat/pkg/pipeline"
	"github.com/arthur-debert/pricat/pkg/ui/view"
	"github.com/spf13/cobra"
)

type runFlags struct {
	source    string
	mappings  string
	delimiter string
	encoding  string
	format    string
	output    string
	strict    bool
	summary   bool
}

func newRunCmd(a *app) *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:     "run",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("source", f.source); err != nil {
				return err
			}
			if err := requireFlag("mappings", f.mappings); err != nil {
				return err
			}

			cfg, err := config.Merge(a.cfg, f.overrides(cmd))
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, MsgErrFlagValue)
			}
			return runPipeline(cmd, a, cfg, f)
		},
	}

	cmd.Flags().StringVarP(&f.source, "source", "s", "", MsgFlagSource)
	cmd.Flags().StringVarP(&f.mappings, "mappings", "m", "", MsgFlagMappings)
	cmd.Flags().StringVarP(&f.delimiter, "delimiter", "d", "", MsgFlagDelimiter)
	cmd.Flags().StringVarP(&f.encoding, "encoding", "e", "", MsgFlagEncoding)
	cmd.Flags().StringVarP(&f.format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&f.strict, "strict", false, MsgFlagStrict)
	cmd.Flags().BoolVar(&f.summary, "summary", false, MsgFlagSummary)

	return cmd
}

// overrides returns the explicitly set flags as dotted config keys
func (f *runFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	overrides := map[string]interface{}{}
	set := func(flag, key string, value interface{}) {
		if cmd.Flags().Changed(flag) {
			overrides[key] = value
		}
	}
	set("delimiter", "csv.delimiter", f.delimiter)
	set("encoding", "csv.encoding", f.encoding)
	set("format", "output.format", f.format)
	set("output", "output.path", f.output)
	set("strict", "mapping.strict_duplicates", f.strict)
	return overrides
}

func runPipeline(cmd *cobra.Command, a *app, cfg *config.Config, f *runFlags) error {
	format, err := load.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if cfg.Output.Path != "" {
		file := &lazyFile{path: cfg.Output.Path}
		defer func() { _ = file.Close() }()
		out = file
	}

	result, err := pipeline.Run(pipeline.Options{
		Source:           fileMeta(f.source, cfg),
		Mappings:         fileMeta(f.mappings, cfg),
		Columns:          cfg.Mapping.Columns,
		StrictDuplicates: cfg.Mapping.StrictDuplicates,
		Format:           format,
		Encoder:          load.Options{Indent: cfg.Output.Indent},
		Output:           out,
	})
	if err != nil {
		return err
	}

	if !f.summary {
		return nil
	}
	renderer, err := a.renderer(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return renderer.RenderResult(view.Summary{
		RunID:    result.RunID,
		Source:   f.source,
		Mappings: f.mappings,
		Output:   cfg.Output.Path,
		Format:   format.String(),
		Rows:     result.Rows,
		Rules:    result.Rules,
		Catalog:  result.Catalog.Stats(),
		Duration: result.Duration,
	})
}

func fileMeta(path string, cfg *config.Config) extract.FileMeta {
	return extract.FileMeta{
		Path:      path,
		Delimiter: cfg.CSV.Delimiter,
		Encoding:  cfg.CSV.Encoding,
	}
}
