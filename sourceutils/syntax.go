package sourceutils

import (
	"context"

	"github.com/walysson-bot/vscode-js-debug/internal/jsparse"
)

// GetSyntaxErrorIn parses code without running it, purely to surface a
// syntax error for display. A nil result means the code parses cleanly.
// The caller decides what to do with a broken snippet; this never
// executes anything.
func GetSyntaxErrorIn(ctx context.Context, code string) error {
	src := []byte(code)
	tree, err := jsparse.Parse(ctx, src)
	if err != nil {
		return err
	}
	if serr := jsparse.FirstSyntaxError(tree, src); serr != nil {
		return serr
	}
	return nil
}
