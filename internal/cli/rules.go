package cli

import (
	"github.com/arthur-debert/pricat/pkg/config"
	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/logging"
	"github.com/arthur-debert/pricat/pkg/pipeline"
	"github.com/arthur-debert/pricat/pkg/ui/view"
	"github.com/spf13/cobra"
)

func newRulesCmd(a *app) *cobra.Command {
	var (
		mappings  string
		delimiter string
		encoding  string
		check     bool
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: MsgRulesShort,
		Long:  MsgRulesLong,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("mappings", mappings); err != nil {
				return err
			}

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("delimiter") {
				overrides["csv.delimiter"] = delimiter
			}
			if cmd.Flags().Changed("encoding") {
				overrides["csv.encoding"] = encoding
			}
			cfg, err := config.Merge(a.cfg, overrides)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, MsgErrFlagValue)
			}

			logger := logging.GetLogger("cli.rules")
			m, err := pipeline.Compile(fileMeta(mappings, cfg), cfg.Mapping.Columns, cfg.Mapping.StrictDuplicates, logger)
			if err != nil {
				return err
			}
			if check {
				if err := m.Validate(); err != nil {
					return err
				}
			}

			renderer, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(view.RuleTable{
				Source:  mappings,
				Rules:   m.Rules(),
				Counts:  m.Counts(),
				Checked: check,
			})
		},
	}

	cmd.Flags().StringVarP(&mappings, "mappings", "m", "", MsgFlagMappings)
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", MsgFlagDelimiter)
	cmd.Flags().StringVarP(&encoding, "encoding", "e", "", MsgFlagEncoding)
	cmd.Flags().BoolVar(&check, "check", false, MsgFlagCheck)

	return cmd
}
