package jsprint

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/walysson-bot/vscode-js-debug/internal/jsparse"
)

func printSource(t *testing.T, src string, cb MappingCallback) string {
	t.Helper()
	tree, err := jsparse.Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	return string(Print([]byte(src), tree, cb))
}

func TestPrint(t *testing.T) {
	tests := []struct {
		desc string
		src  string
		want string
	}{
		{
			desc: "declarations and calls",
			src:  "var a=1;function f(){return a+1}f();",
			want: "var a = 1;\nfunction f() {\n  return a + 1\n}\nf();\n",
		},
		{
			desc: "switch",
			src:  "switch(x){case 1:y();break;default:z()}",
			want: "switch (x) {\n  case 1:\n    y();\n    break;\n  default:\n    z()\n}\n",
		},
		{
			desc: "object and arrow",
			src:  "const o={a:1,b:[2,3]};arr.map(v=>v*2);",
			want: "const o = {a: 1, b: [2, 3]};\narr.map(v => v * 2);\n",
		},
		{
			desc: "destructuring and parameter defaults",
			src:  "let{x=1,y=2}=o;function f(a=1){}",
			want: "let {x = 1, y = 2} = o;\nfunction f(a = 1) {}\n",
		},
		{
			desc: "if else",
			src:  "if(a){b()}else{c()}",
			want: "if (a) {\n  b()\n} else {\n  c()\n}\n",
		},
		{
			desc: "iife",
			src:  "(function(){f()})()",
			want: "(function () {\n  f()\n})()\n",
		},
		{
			desc: "class",
			src:  "class A{constructor(){this.x=1}}",
			want: "class A {\n  constructor() {\n    this.x = 1\n  }\n}\n",
		},
		{
			desc: "while with update",
			src:  "while(i<10){i++}",
			want: "while (i < 10) {\n  i++\n}\n",
		},
		{
			desc: "line comment",
			src:  "// hi\nf()",
			want: "// hi\nf()\n",
		},
		{
			desc: "ternary",
			src:  "a?b:c",
			want: "a ? b : c\n",
		},
		{
			desc: "for header stays on one line",
			src:  "for(let i=0;i<n;i++)g(i)",
			want: "for (let i = 0; i < n; i++) g(i)\n",
		},
		{
			desc: "atoms stay verbatim",
			src:  "const s=`a${x}b`;const r=/[a-z]+/g;",
			want: "const s = `a${x}b`;\nconst r = /[a-z]+/g;\n",
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got := printSource(t, test.src, nil)
			if got != test.want {
				t.Errorf("expected %q, got %q", test.want, got)
			}
		})
	}
}

func TestPrintMappings(t *testing.T) {
	type mapping struct {
		GenLine, GenCol  int
		OrigRow, OrigCol int
	}
	var got []mapping
	out := printSource(t, "var x=1;fn();", func(line, col int, orig sitter.Point) {
		got = append(got, mapping{line, col, int(orig.Row), int(orig.Column)})
	})

	if want := "var x = 1;\nfn();\n"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
	want := []mapping{
		{1, 0, 0, 0},  // var
		{1, 4, 0, 4},  // x
		{1, 6, 0, 5},  // =
		{1, 8, 0, 6},  // 1
		{1, 9, 0, 7},  // ;
		{2, 0, 0, 8},  // fn
		{2, 2, 0, 10}, // (
		{2, 3, 0, 11}, // )
		{2, 4, 0, 12}, // ;
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mapping reports diff (-want +got):\n%s", diff)
	}
}

// TestPrintReparses feeds trickier token sequences through the printer and
// checks the output still parses cleanly, guarding against token merges and
// broken automatic-semicolon behavior.
func TestPrintReparses(t *testing.T) {
	srcs := []string{
		"a-- - --b",
		"x=-1",
		"i+++j",
		"async x=>await x",
		"function*g(){yield*h()}",
		"a??b",
		"tag`t${v}`",
		"new.target",
		"obj?.prop?.[x]",
		"do{f()}while(a)",
		"try{f()}catch(e){g()}finally{h()}",
		"label:for(;;)break label",
		"import{a as b}from'm';",
		"let{x=1,...rest}=obj;",
		"class B extends A{static f(){super.f()}}",
		"throw new Error('x')",
		"for(const k in o)f(k);for(const v of a)g(v)",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			out := printSource(t, src, nil)
			tree, err := jsparse.Parse(context.Background(), []byte(out))
			if err != nil {
				t.Fatalf("Parse() of output returned error: %v", err)
			}
			if serr := jsparse.FirstSyntaxError(tree, []byte(out)); serr != nil {
				t.Errorf("output %q does not parse: %v", out, serr)
			}
		})
	}
}
