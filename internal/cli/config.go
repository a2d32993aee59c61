package cli

import (
	"fmt"

	"github.com/arthur-debert/pricat/pkg/config"
	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			data, err := a.cfg.TOML()
			if err != nil {
				return errors.Wrap(err, errors.ErrEncode, "Failed to encode configuration")
			}
			for _, src := range a.cfg.Sources {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", src)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}
