package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pricat/internal/version"
	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return errors.Newf(errors.ErrInvalidInput, "unsupported shell: %s", args[0])
		},
	}
}

func newManCmd(rootCmd *cobra.Command) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "Cannot create %s", dir)
			}

			opts := doc.GenManTreeOptions{
				Header: &doc.GenManHeader{
					Title:   "PRICAT",
					Section: "1",
					Source:  "pricat " + version.Version,
					Manual:  "pricat manual",
				},
				Path:             dir,
				CommandSeparator: "-",
			}
			if err := doc.GenManTreeFromOpts(rootCmd, opts); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "Failed to generate man pages")
			}

			_, err := fmt.Fprintf(cmd.ErrOrStderr(), MsgManWritten+"\n", dir)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "man", MsgFlagManDir)
	return cmd
}
