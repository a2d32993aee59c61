package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/pricat/pkg/cobrax/topics"
	"github.com/arthur-debert/pricat/pkg/logging"
	"github.com/arthur-debert/pricat/pkg/ui"
	"github.com/spf13/cobra"
)

//go:embed help
var helpFS embed.FS

// initTopics installs the help command that serves the embedded topics
func initTopics(rootCmd *cobra.Command) {
	logger := logging.GetLogger("cli.topics")

	sub, err := fs.Sub(helpFS, "help")
	if err != nil {
		logger.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
		renderer = topics.NewGlamourRenderer()
	}

	if _, err := topics.InitializeWithOptions(rootCmd, sub, topics.Options{Renderer: renderer}); err != nil {
		logger.Warn().Err(err).Msg("Help topics unavailable")
	}
}
