package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/walysson-bot/vscode-js-debug/sourcemaps"
	"github.com/walysson-bot/vscode-js-debug/sourceutils"
)

var (
	mapurlResolve bool
)

var mapurlCmd = &cobra.Command{
	Use:   "mapurl <file.js>",
	Short: "Extract the sourceMappingURL directive from a script",
	Long: `Extract the sourceMappingURL comment directive from a script and
print the URL it names. With --resolve, relative URLs are resolved
against the script's own location.

Examples:
  jsmap mapurl dist/app.min.js
  jsmap mapurl --resolve dist/app.min.js`,
	Args: cobra.ExactArgs(1),
	Run:  runMapurl,
}

func init() {
	mapurlCmd.Flags().BoolVar(&mapurlResolve, "resolve", false, "Resolve the URL against the script's own path")
	rootCmd.AddCommand(mapurlCmd)
}

func runMapurl(cmd *cobra.Command, args []string) {
	content, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	url, ok := sourceutils.ParseSourceMappingURL(string(content))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no sourceMappingURL directive in %s\n", args[0])
		os.Exit(1)
	}
	if mapurlResolve {
		url = sourcemaps.ResolveSourceMapURL(args[0], url)
	}
	fmt.Println(url)
}
