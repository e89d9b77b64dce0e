package sourceutils

import (
	"context"
	"fmt"

	"github.com/neelance/sourcemap"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/walysson-bot/vscode-js-debug/internal/jsparse"
	"github.com/walysson-bot/vscode-js-debug/internal/jsprint"
	"github.com/walysson-bot/vscode-js-debug/sourcemaps"
)

// PrettyPrintAsSourceMap reformats minified code and builds a map that
// ties the two texts together. The pretty text is recorded as the map's
// generated side and the minified text as its original side, under the
// single source fileName, whose embedded content is the pretty text. From
// the debugger's point of view the pretty text is what the human reads
// while the minified text is what actually runs; packaging the pair this
// way lets the ordinary map machinery carry the UI between them. The map
// is bound to compiledPath and tagged with sourceMapURL.
//
// If the minified code does not parse, no pretty version is produced and
// the caller must fall back to showing the raw text.
func PrettyPrintAsSourceMap(ctx context.Context, fileName, minified, compiledPath, sourceMapURL string) (*sourcemaps.Map, error) {
	src := []byte(minified)
	tree, err := jsparse.Parse(ctx, src)
	if err != nil {
		return nil, err
	}
	if serr := jsparse.FirstSyntaxError(tree, src); serr != nil {
		return nil, fmt.Errorf("pretty printing %s: %w", fileName, serr)
	}

	table := &sourcemap.Map{File: fileName}
	pretty := jsprint.Print(src, tree, func(line, col int, original sitter.Point) {
		table.AddMapping(&sourcemap.Mapping{
			GeneratedLine:   line,
			GeneratedColumn: col,
			OriginalFile:    fileName,
			OriginalLine:    int(original.Row) + 1,
			OriginalColumn:  int(original.Column),
		})
	})

	m := sourcemaps.New(table, sourcemaps.Metadata{CompiledPath: compiledPath, SourceMapURL: sourceMapURL})
	m.SetSourceContent(fileName, string(pretty))
	return m, nil
}
