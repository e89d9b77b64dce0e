package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// logLevelFlag is the CLI --log-level flag value
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "jsmap",
	Short: "jsmap - source map and script tooling for JavaScript debugging",
	Long: `jsmap works on the artifacts a JavaScript debugger deals with: it
pretty prints minified scripts together with an inverse source map,
extracts sourceMappingURL directives, verifies that files on disk still
match the content a runtime reported, and resolves original locations to
their best generated position.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(resolveLogLevel())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log verbosity: debug, info, warning, or error (default: warning)")
}

// resolveLogLevel determines the effective log level from CLI flag and env var.
// Precedence: --log-level flag > JSMAP_LOG env var > warning
func resolveLogLevel() log.Level {
	value := logLevelFlag
	if value == "" {
		value = os.Getenv("JSMAP_LOG")
	}
	if value == "" {
		return log.WarnLevel
	}
	level, err := log.ParseLevel(value)
	if err != nil {
		log.Warningf("Unknown log level %q, using warning.", value)
		return log.WarnLevel
	}
	return level
}
