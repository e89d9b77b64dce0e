package sourceutils

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/walysson-bot/vscode-js-debug/internal/jsparse"
)

// RewriteOutcome says what RewriteTopLevelAwait decided to do with a
// snippet. Only Rewritten carries code; every other outcome tells the
// caller to evaluate the original snippet untouched.
type RewriteOutcome int

const (
	// ParseFailed means the wrapped snippet does not parse. Evaluating
	// the original code lets the runtime report its own syntax error.
	ParseFailed RewriteOutcome = iota
	// NoAwait means the snippet never awaits at the top level, so
	// wrapping it would only slow it down.
	NoAwait
	// TopLevelReturn means the snippet contains a top-level return,
	// which cannot keep its meaning inside a wrapper function.
	TopLevelReturn
	// Rewritten means the snippet was wrapped in an async IIFE and its
	// declarations hoisted out.
	Rewritten
)

func (o RewriteOutcome) String() string {
	switch o {
	case ParseFailed:
		return "parse failed"
	case NoAwait:
		return "no await"
	case TopLevelReturn:
		return "top-level return"
	case Rewritten:
		return "rewritten"
	}
	return "unknown"
}

// RewriteResult is the outcome of RewriteTopLevelAwait. Code is set only
// when Outcome is Rewritten.
type RewriteResult struct {
	Outcome RewriteOutcome
	Code    string
}

const (
	awaitWrapPrefix = "(async () => {"
	// The newline keeps a trailing line comment in the snippet from
	// swallowing the closing brace.
	awaitWrapSuffix = "\n})()"
)

// RewriteTopLevelAwait makes a REPL snippet that uses await at the top
// level runnable by wrapping it in an immediately invoked async arrow.
// Wrapping alone would break the snippet's side effects, so declarations
// are rewritten to keep their former reach: top-level function and class
// declarations become assignments to their own name, and var lists (plus
// top-level let/const lists) become void-wrapped assignment expressions.
// If the last top-level statement is an expression, it is returned from
// the wrapper so the promise settles to the snippet's value.
func RewriteTopLevelAwait(ctx context.Context, code string) RewriteResult {
	wrapped := awaitWrapPrefix + code + awaitWrapSuffix
	src := []byte(wrapped)
	tree, err := jsparse.Parse(ctx, src)
	if err != nil {
		return RewriteResult{Outcome: ParseFailed}
	}
	root := tree.RootNode()
	if root.HasError() {
		return RewriteResult{Outcome: ParseFailed}
	}
	body := wrapperBody(root)
	if body == nil {
		return RewriteResult{Outcome: ParseFailed}
	}

	w := &awaitWalker{src: src}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		w.walk(body.NamedChild(i), true)
	}
	switch {
	case !w.containsAwait:
		return RewriteResult{Outcome: NoAwait}
	case w.containsReturn:
		return RewriteResult{Outcome: TopLevelReturn}
	}

	if last := lastStatement(body); last != nil && last.Type() == "expression_statement" {
		w.edits = append(w.edits, returnEdits(last, src)...)
	}
	return RewriteResult{Outcome: Rewritten, Code: ApplyTextEdits(wrapped, w.edits)}
}

// wrapperBody digs the statement block of the freshly added async arrow
// back out of the parse tree.
func wrapperBody(root *sitter.Node) *sitter.Node {
	stmt := root.NamedChild(0)
	if stmt == nil || stmt.Type() != "expression_statement" {
		return nil
	}
	call := stmt.NamedChild(0)
	if call == nil || call.Type() != "call_expression" {
		return nil
	}
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Type() != "parenthesized_expression" {
		return nil
	}
	arrow := fn.NamedChild(0)
	if arrow == nil || arrow.Type() != "arrow_function" {
		return nil
	}
	body := arrow.ChildByFieldName("body")
	if body == nil || body.Type() != "statement_block" {
		return nil
	}
	return body
}

type awaitWalker struct {
	src            []byte
	containsAwait  bool
	containsReturn bool
	edits          []TextEdit
}

// walk examines n and recurses into its named children. topLevel is true
// only for the direct statements of the wrapper body. Function bodies are
// never descended into: their awaits and returns are already legal.
func (w *awaitWalker) walk(n *sitter.Node, topLevel bool) {
	switch n.Type() {
	case "function_expression", "generator_function", "arrow_function", "method_definition":
		return
	case "function_declaration", "generator_function_declaration":
		if topLevel {
			w.exposeDeclaration(n)
		}
		return
	case "class_declaration":
		// Recursion continues so that awaits in the heritage clause and
		// in field initializers are still seen. Method bodies stop at
		// the method_definition boundary above.
		if topLevel {
			w.exposeDeclaration(n)
		}
	case "await_expression":
		w.containsAwait = true
	case "for_in_statement":
		// for await (... of ...) carries a bare await token in its
		// header. Declarations in for-in/for-of headers are plain
		// patterns, not declaration nodes, so they are never rewritten.
		if hasAwaitKeyword(n) {
			w.containsAwait = true
		}
	case "return_statement":
		w.containsReturn = true
	case "variable_declaration":
		// var reaches the enclosing scope no matter how deeply the
		// statement is nested, so it is always converted.
		w.rewriteDeclaration(n)
	case "lexical_declaration":
		if topLevel {
			w.rewriteDeclaration(n)
		}
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		w.walk(n.NamedChild(i), false)
	}
}

// exposeDeclaration turns "function f(...) {...}" or "class C {...}" into
// an assignment "f=function f(...) {...}" so the binding escapes the
// wrapper.
func (w *awaitWalker) exposeDeclaration(n *sitter.Node) {
	name := n.ChildByFieldName("name")
	if name == nil {
		return
	}
	start := int(n.StartByte())
	w.edits = append(w.edits, TextEdit{Start: start, End: start, Text: name.Content(w.src) + "="})
}

// rewriteDeclaration converts a declaration list into assignment
// expressions under a void operator:
//
//	var x = 1;        ->  void(x = 1);
//	var x = 1, y;     ->  void ((x = 1), (y=undefined));
//
// The assignments land on the surrounding scope, which for a snippet is
// the global, restoring the declaration's pre-wrap behavior.
func (w *awaitWalker) rewriteDeclaration(n *sitter.Node) {
	var decls []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == "variable_declarator" {
			decls = append(decls, c)
		}
	}
	if len(decls) == 0 {
		return
	}

	voidText := "void"
	if len(decls) > 1 {
		voidText = "void ("
	}
	w.edits = append(w.edits, TextEdit{Start: int(n.StartByte()), End: int(decls[0].StartByte()), Text: voidText})
	if len(decls) > 1 {
		// Equal-offset inserts land right to left in append order. The
		// list's closing paren shares its offset with the last
		// declarator's closing edit and must stay outermost, so it is
		// appended first.
		end := int(decls[len(decls)-1].EndByte())
		w.edits = append(w.edits, TextEdit{Start: end, End: end, Text: ")"})
	}
	for _, d := range decls {
		start, end := int(d.StartByte()), int(d.EndByte())
		if d.ChildByFieldName("value") == nil {
			w.edits = append(w.edits,
				TextEdit{Start: start, End: start, Text: "("},
				TextEdit{Start: end, End: end, Text: "=undefined)"})
			continue
		}
		w.edits = append(w.edits,
			TextEdit{Start: start, End: start, Text: "("},
			TextEdit{Start: end, End: end, Text: ")"})
	}
}

func hasAwaitKeyword(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if !c.IsNamed() && c.Type() == "await" {
			return true
		}
	}
	return false
}

// lastStatement returns the last statement of the wrapper body, looking
// past trailing comments.
func lastStatement(body *sitter.Node) *sitter.Node {
	for i := int(body.NamedChildCount()) - 1; i >= 0; i-- {
		if c := body.NamedChild(i); c.Type() != "comment" {
			return c
		}
	}
	return nil
}

// returnEdits makes the wrapper return the value of its final expression
// statement, parenthesized so that sequence expressions survive.
func returnEdits(stmt *sitter.Node, src []byte) []TextEdit {
	expr := stmt.NamedChild(0)
	if expr == nil {
		return nil
	}
	edits := []TextEdit{{Start: int(stmt.StartByte()), End: int(expr.StartByte()), Text: "return ("}}
	end := int(stmt.EndByte())
	if end > 0 && src[end-1] == ';' {
		edits = append(edits, TextEdit{Start: end - 1, End: end - 1, Text: ")"})
	} else {
		edits = append(edits, TextEdit{Start: end, End: end, Text: ")"})
	}
	return edits
}
