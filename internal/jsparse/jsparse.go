// Package jsparse wraps the tree-sitter JavaScript grammar behind the small
// parsing surface the rewriting engine needs: parse a snippet as a full
// program and report the first syntax problem in editor coordinates.
package jsparse

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/walysson-bot/vscode-js-debug/sourcemaps"
)

// Parse parses src as a JavaScript program. A fresh parser is used per call
// so concurrent parses stay independent.
func Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	p := sitter.NewParser()
	p.SetLanguage(javascript.GetLanguage())
	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing javascript: %w", err)
	}
	return tree, nil
}

// SyntaxError is the first syntax problem found in a parsed program. Pos is
// in editor coordinates, 1-based line and column.
type SyntaxError struct {
	Msg string
	Pos sourcemaps.UILocation
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// FirstSyntaxError scans a parsed tree for the earliest error or missing
// node and renders it as a SyntaxError. It returns nil for a clean tree.
func FirstSyntaxError(tree *sitter.Tree, src []byte) *SyntaxError {
	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}
	n := firstBadNode(root)
	if n == nil {
		return &SyntaxError{Msg: "invalid syntax", Pos: pointToUI(root.StartPoint())}
	}
	if n.IsMissing() {
		return &SyntaxError{Msg: fmt.Sprintf("missing %q", n.Type()), Pos: pointToUI(n.StartPoint())}
	}
	msg := "unexpected end of input"
	if tok := strings.TrimSpace(n.Content(src)); tok != "" {
		if len(tok) > 20 {
			tok = tok[:20]
		}
		msg = fmt.Sprintf("unexpected %q", tok)
	}
	return &SyntaxError{Msg: msg, Pos: pointToUI(n.StartPoint())}
}

// firstBadNode returns the earliest ERROR or missing node in byte order.
// Tree-sitter propagates the error flag up to the root, so the walk only
// descends into subtrees that carry it.
func firstBadNode(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstBadNode(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

func pointToUI(p sitter.Point) sourcemaps.UILocation {
	return sourcemaps.UILocation{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}
