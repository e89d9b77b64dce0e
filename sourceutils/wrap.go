package sourceutils

import (
	"context"
	"strings"

	"github.com/walysson-bot/vscode-js-debug/internal/jsparse"
)

// WrapObjectLiteral parenthesizes a snippet that would otherwise evaluate
// as a block statement. A REPL user typing {a: 1} means an object literal,
// but the grammar sees a block with a labeled expression. Anything that is
// not provably a lone object literal comes back unchanged, including
// snippets that are already parenthesized.
func WrapObjectLiteral(ctx context.Context, code string) string {
	trimmed := strings.TrimSpace(code)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return code
	}

	// Borrow a return statement to force expression context.
	if !parsesAsObjectReturn(ctx, "return "+code+";") {
		return code
	}
	wrapped := "(" + code + ")"
	if err := GetSyntaxErrorIn(ctx, wrapped); err != nil {
		return code
	}
	return wrapped
}

func parsesAsObjectReturn(ctx context.Context, src string) bool {
	data := []byte(src)
	tree, err := jsparse.Parse(ctx, data)
	if err != nil || tree.RootNode().HasError() {
		return false
	}
	ret := tree.RootNode().NamedChild(0)
	if ret == nil || ret.Type() != "return_statement" {
		return false
	}
	expr := ret.NamedChild(0)
	return expr != nil && expr.Type() == "object"
}
