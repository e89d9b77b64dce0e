package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/walysson-bot/vscode-js-debug/internal/jsparse"
	"github.com/walysson-bot/vscode-js-debug/sourceutils"
)

// syntaxErrorLimit caps how many problems are printed for one invocation.
const syntaxErrorLimit = 10

var syntaxCmd = &cobra.Command{
	Use:   "syntax <file.js>...",
	Short: "Report the first syntax error in each JavaScript file",
	Long: `Parse each file as a JavaScript program and report the first syntax
error found, in file:line:column form. Files that parse cleanly produce
no output.

The exit status is 0 when every file parses and 1 otherwise.

Examples:
  jsmap syntax dist/app.min.js
  jsmap syntax src/*.js`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSyntax,
}

func init() {
	rootCmd.AddCommand(syntaxCmd)
}

func runSyntax(cmd *cobra.Command, args []string) {
	var errs jsparse.ErrorList
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			errs = errs.Append(err)
			continue
		}
		if serr := sourceutils.GetSyntaxErrorIn(cmd.Context(), string(src)); serr != nil {
			errs = errs.Append(fmt.Errorf("%s:%v", path, serr))
		}
	}
	for _, err := range errs.Trim(syntaxErrorLimit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if errs.ErrOrNil() != nil {
		os.Exit(1)
	}
}
