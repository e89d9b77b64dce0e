// Package jsprint regenerates readable JavaScript from a parsed syntax tree
// while reporting, for every emitted token, its position in the regenerated
// text and in the original input. Layout is re-derived (statement per line,
// two-space indent) but every non-layout byte of the output comes verbatim
// from the input, so the result parses to the same program.
package jsprint

import (
	"bytes"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// MappingCallback receives one report per emitted token. generatedLine is
// 1-based and generatedColumn is 0-based, the source map convention;
// original is the token's start point in the input, 0-based in both row and
// column as tree-sitter reports positions.
type MappingCallback func(generatedLine, generatedColumn int, original sitter.Point)

// Print regenerates src from its parsed tree. cb may be nil.
func Print(src []byte, tree *sitter.Tree, cb MappingCallback) []byte {
	p := &printer{src: src, cb: cb}
	p.printNode(tree.RootNode())
	out := p.out.Bytes()
	if len(out) > 0 && !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return out
}

// atomicTypes are emitted verbatim without descending into their children,
// so escapes, interpolations and comment bodies survive untouched.
var atomicTypes = map[string]bool{
	"string":          true,
	"template_string": true,
	"regex":           true,
	"comment":         true,
}

// keywordTokens always read with a space before whatever follows them,
// except punctuation that binds tighter. Contextual keywords used as plain
// identifiers are not affected: the grammar types those as identifier.
var keywordTokens = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "do": true,
	"switch": true, "case": true, "default": true, "return": true,
	"throw": true, "new": true, "delete": true, "void": true,
	"typeof": true, "instanceof": true, "in": true, "of": true,
	"await": true, "yield": true, "async": true, "function": true,
	"class": true, "extends": true, "try": true, "catch": true,
	"finally": true, "let": true, "const": true, "var": true,
	"static": true, "get": true, "set": true, "export": true,
	"import": true, "from": true, "as": true,
}

// operatorTokens take part in the spaced/tight decision driven by their
// parent node. Prefix and postfix operators (!, ~, ++, --, ...) are left
// out: they always bind tight on their operand side.
var operatorTokens = map[string]bool{
	"=": true, "+": true, "-": true, "*": true, "/": true, "%": true,
	"**": true, "==": true, "===": true, "!=": true, "!==": true,
	"<": true, ">": true, "<=": true, ">=": true, "&&": true, "||": true,
	"??": true, "&": true, "|": true, "^": true, "<<": true, ">>": true,
	">>>": true, "+=": true, "-=": true, "*=": true, "/=": true,
	"%=": true, "**=": true, "<<=": true, ">>=": true, ">>>=": true,
	"&=": true, "|=": true, "^=": true, "&&=": true, "||=": true,
	"??=": true, "?": true, "=>": true,
}

// spacedOpParents lists the parents whose operator tokens read with spaces
// around them. Operators under any other parent (unary_expression,
// update_expression, generator stars and the like) bind tight.
var spacedOpParents = map[string]bool{
	"binary_expression":               true,
	"assignment_expression":           true,
	"augmented_assignment_expression": true,
	"ternary_expression":              true,
	"variable_declarator":             true,
	"assignment_pattern":              true,
	"object_assignment_pattern":       true,
	"field_definition":                true,
	"arrow_function":                  true,
}

type printer struct {
	src []byte
	cb  MappingCallback
	out bytes.Buffer

	line   int // completed newlines in the output
	col    int
	indent int

	pendingNewline bool
	lastType       string
	lastByte       byte
	lastSpaced     bool // last token was an operator that reads spaced
}

func (p *printer) printNode(n *sitter.Node) {
	t := n.Type()
	if atomicTypes[t] || n.ChildCount() == 0 {
		p.emitToken(n)
		return
	}
	switch t {
	case "program":
		for i := 0; i < int(n.ChildCount()); i++ {
			p.pendingNewline = true
			p.printNode(n.Child(i))
		}
	case "statement_block", "class_body", "switch_body":
		p.printBraced(n)
	case "switch_case", "switch_default":
		p.printSwitchCase(n)
	default:
		for i := 0; i < int(n.ChildCount()); i++ {
			p.printNode(n.Child(i))
		}
	}
}

// printBraced lays out a statement-carrying brace pair: every child on its
// own line, one indent level deeper, the closing brace back on the parent
// level. An empty pair stays on one line.
func (p *printer) printBraced(n *sitter.Node) {
	count := int(n.ChildCount())
	p.emitToken(n.Child(0))
	if count == 2 {
		p.emitToken(n.Child(1))
		return
	}
	p.indent++
	for i := 1; i < count-1; i++ {
		c := n.Child(i)
		// Member-separating semicolons in class bodies stay on the
		// member's line.
		if c.Type() != ";" {
			p.pendingNewline = true
		}
		p.printNode(c)
	}
	p.indent--
	p.pendingNewline = true
	p.emitToken(n.Child(count - 1))
}

// printSwitchCase emits the clause header through its colon, then each body
// statement one level deeper.
func (p *printer) printSwitchCase(n *sitter.Node) {
	count := int(n.ChildCount())
	i := 0
	for ; i < count; i++ {
		c := n.Child(i)
		p.printNode(c)
		if c.Type() == ":" {
			i++
			break
		}
	}
	p.indent++
	for ; i < count; i++ {
		p.pendingNewline = true
		p.printNode(n.Child(i))
	}
	p.indent--
}

func (p *printer) emitToken(n *sitter.Node) {
	text := n.Content(p.src)
	if text == "" {
		return
	}
	if p.pendingNewline {
		if p.out.Len() > 0 {
			p.writeString("\n")
		}
		p.writeString(strings.Repeat("  ", p.indent))
		p.pendingNewline = false
		p.lastType = ""
		p.lastByte = 0
		p.lastSpaced = false
	} else if p.needSpace(n, text) {
		p.writeString(" ")
	}
	if p.cb != nil {
		p.cb(p.line+1, p.col, n.StartPoint())
	}
	p.writeString(text)
	p.lastType = n.Type()
	p.lastByte = text[len(text)-1]
	p.lastSpaced = operatorTokens[p.lastType] && spacedOpParents[parentType(n)]
	// Line comments swallow the rest of the line, the next token must not
	// land behind them.
	if p.lastType == "comment" && strings.HasPrefix(text, "//") {
		p.pendingNewline = true
	}
}

// needSpace decides whether a space separates the previous token from cur.
// Rules are ordered: punctuation that binds tight wins over keyword and
// operator spacing, which win over the bare word-merge guard.
func (p *printer) needSpace(cur *sitter.Node, text string) bool {
	lt := p.lastType
	if lt == "" {
		return false
	}
	ct := cur.Type()
	switch ct {
	case ")", "]", "}", ";", ",":
		return false
	case ":":
		return parentType(cur) == "ternary_expression"
	case ".", "?.":
		return false
	}
	switch lt {
	case "(", "[", ".", "?.":
		return false
	}
	if keywordTokens[lt] {
		return true
	}
	if operatorTokens[lt] && p.lastSpaced {
		return true
	}
	if operatorTokens[ct] {
		return spacedOpParents[parentType(cur)]
	}
	if ct == "{" {
		return true
	}
	switch lt {
	case ",", ";", ":":
		return true
	}
	if lt == "comment" || ct == "comment" {
		return true
	}
	if (lt == "}" || lt == ")") && wordByte(text[0]) {
		return true
	}
	return wordByte(p.lastByte) && wordByte(text[0])
}

func parentType(n *sitter.Node) string {
	parent := n.Parent()
	if parent == nil {
		return ""
	}
	return parent.Type()
}

// wordByte reports whether b can be part of an identifier or number, the
// byte classes that must never merge across a removed separator.
func wordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_' || b == '$'
}

func (p *printer) writeString(s string) {
	p.out.WriteString(s)
	for {
		i := strings.IndexByte(s, '\n')
		if i == -1 {
			p.col += len(s)
			return
		}
		p.line++
		p.col = 0
		s = s[i+1:]
	}
}
