package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/walysson-bot/vscode-js-debug/sourceutils"
)

var prettyCmd = &cobra.Command{
	Use:   "pretty <file.js> [<file.js>...]",
	Short: "Pretty print minified JavaScript with an inverse source map",
	Long: `Pretty print minified JavaScript files.

For every input this writes <name>.pretty.js with readable formatting and
<name>.pretty.js.map tying each pretty position back to the minified
original, so a debugger can display the pretty text while the minified
file is what actually runs. Inputs are processed concurrently.

Examples:
  jsmap pretty dist/app.min.js
  jsmap pretty dist/vendor.min.js dist/app.min.js`,
	Args: cobra.MinimumNArgs(1),
	Run:  runPretty,
}

func init() {
	rootCmd.AddCommand(prettyCmd)
}

func runPretty(cmd *cobra.Command, args []string) {
	var group errgroup.Group
	for _, path := range args {
		path := path
		group.Go(func() error {
			out, err := prettyPrintFile(cmd.Context(), path)
			if err != nil {
				return err
			}
			log.Infof("Wrote %s.", out)
			fmt.Println(out)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func prettyPrintFile(ctx context.Context, path string) (string, error) {
	minified, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	outPath := strings.TrimSuffix(path, ".js") + ".pretty.js"
	mapPath := outPath + ".map"
	mapName := filepath.Base(mapPath)

	m, err := sourceutils.PrettyPrintAsSourceMap(ctx, filepath.Base(path), string(minified), path, mapName)
	if err != nil {
		return "", err
	}

	pretty, ok := m.SourceContent(filepath.Base(path))
	if !ok {
		return "", fmt.Errorf("pretty print of %s produced no content", path)
	}
	var out bytes.Buffer
	out.WriteString(pretty)
	fmt.Fprintf(&out, "//# sourceMappingURL=%s\n", mapName)
	if err := os.WriteFile(outPath, out.Bytes(), 0o644); err != nil {
		return "", err
	}

	var table bytes.Buffer
	if err := m.Encode(&table); err != nil {
		return "", err
	}
	if err := os.WriteFile(mapPath, table.Bytes(), 0o644); err != nil {
		return "", err
	}
	return outPath, nil
}
