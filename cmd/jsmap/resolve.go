package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/walysson-bot/vscode-js-debug/sourcemaps"
	"github.com/walysson-bot/vscode-js-debug/sourceutils"
)

var (
	resolveMapPath string
	resolveSource  string
	resolveLine    int
	resolveColumn  int
)

var resolveCmd = &cobra.Command{
	Use:   "resolve --map <file.map> --source <name> --line <n> [--col <n>]",
	Short: "Resolve an original location to its best generated position",
	Long: `Resolve a location in an original source to the generated position a
debugger should bind to, picking among the candidate mappings the one
whose round trip drifts least from the requested line.

The map may be a file path or an inline data: URI. Line and column are
1-based; the printed generated position is <1-based line>:<0-based
column>, the way positions appear in mapping tables.

Examples:
  jsmap resolve --map dist/app.min.js.map --source src/app.ts --line 12
  jsmap resolve --map dist/app.min.js.map --source src/app.ts --line 12 --col 8`,
	Args: cobra.NoArgs,
	Run:  runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveMapPath, "map", "", "Path to the source map, or a data: URI")
	resolveCmd.Flags().StringVar(&resolveSource, "source", "", "Original source name as the map records it")
	resolveCmd.Flags().IntVar(&resolveLine, "line", 1, "1-based line in the original source")
	resolveCmd.Flags().IntVar(&resolveColumn, "col", 1, "1-based column in the original source")
	_ = resolveCmd.MarkFlagRequired("map")
	_ = resolveCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) {
	loader, err := sourcemaps.NewLoader()
	if err != nil {
		log.Warningf("Source map cache unavailable: %v.", err)
	}
	defer loader.Close()

	m, err := loader.Load(resolveMapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ui := sourcemaps.UILocation{Line: resolveLine, Column: resolveColumn}
	pos, ok := sourceutils.GetOptimalCompiledPosition(resolveSource, ui, m)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %s:%s has no generated position in %s\n", resolveSource, ui, resolveMapPath)
		os.Exit(1)
	}
	fmt.Println(pos)
}
