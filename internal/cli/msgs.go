package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Build a nested catalog from a flat price catalog"
	MsgRunShort        = "Transform a source table into a catalog document"
	MsgRulesShort      = "Show the compiled mapping rules"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Configuration file (default ./pricat.toml)"
	MsgFlagSource     = "Path to the source file"
	MsgFlagMappings   = "Path to the mappings file (.csv, .yaml or .yml)"
	MsgFlagDelimiter  = "CSV field delimiter"
	MsgFlagEncoding   = "Character encoding of the input files"
	MsgFlagFormat     = "Output format (json, yaml, toml, xml)"
	MsgFlagOutput     = "Write the catalog to this file instead of stdout"
	MsgFlagStrict     = "Fail on repeated mapping rule keys"
	MsgFlagSummary    = "Print a run summary on stderr"
	MsgFlagDisplay    = "Display format for summaries and rule tables (auto, term, text, json)"
	MsgFlagCheck      = "Check that composite rules are well formed"
	MsgFlagDefaults   = "Print the built-in defaults, comments included"
	MsgFlagManDir     = "Directory to write the man pages to"
	MsgManWritten     = "Man pages written to %s"
	MsgVersionFormat  = "pricat version %s\n  commit: %s\n  built:  %s\n"
	MsgUsageHint      = "Run '%s --help' for usage."
	MsgNoCommand      = "no command specified"

	// Error messages
	MsgErrFlagRequired = "required flag --%s not set"
	MsgErrNoArgs       = "%q accepts no arguments, got %q"
	MsgErrFlagValue    = "invalid flag value"
	MsgErrOpenOutput   = "Cannot create output file: %s"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
