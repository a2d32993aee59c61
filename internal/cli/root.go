// Package cli wires the pricat commands to the pipeline.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pricat/internal/version"
	"github.com/arthur-debert/pricat/pkg/config"
	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/logging"
	"github.com/arthur-debert/pricat/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries the global flags and the loaded configuration to the
// subcommands
type app struct {
	verbosity  int
	configPath string
	display    string

	cfg *config.Config
}

// NewRootCmd creates the pricat command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:               "pricat",
		Short:             MsgRootShort,
		Long:              MsgRootLong,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{Path: a.configPath})

			// File logging is a config setting, so a broken config only
			// logs to the console
			logging.Setup(logging.Options{
				Verbosity: a.verbosity,
				Console:   cmd.ErrOrStderr(),
				File:      err == nil && cfg.Log.File,
			})
			logging.LogCommand(cmd.CommandPath(), args)
			if err != nil {
				return err
			}

			a.cfg = cfg
			log.Debug().Strs("sources", cfg.Sources).Msg("Configuration loaded")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return errors.New(errors.ErrInvalidInput, MsgNoCommand)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.display, "display", "auto", MsgFlagDisplay)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.New(errors.ErrInvalidInput, err.Error()).
			WithDetail("hint", fmt.Sprintf(MsgUsageHint, cmd.CommandPath()))
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newRulesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))
	initTopics(rootCmd)

	return rootCmd
}

// renderer builds the display renderer selected by --display
func (a *app) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.display)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}

// noArgs rejects positional arguments as a usage error
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.Newf(errors.ErrInvalidInput, MsgErrNoArgs, cmd.CommandPath(), strings.Join(args, " "))
	}
	return nil
}

// requireFlag reports a missing mandatory flag as a usage error
func requireFlag(name, value string) error {
	if value == "" {
		return errors.Newf(errors.ErrInvalidInput, MsgErrFlagRequired, name).
			WithDetail("flag", name)
	}
	return nil
}
