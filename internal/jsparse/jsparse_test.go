package jsparse

import (
	"context"
	"errors"
	"testing"
)

func TestFirstSyntaxError(t *testing.T) {
	tests := []struct {
		desc     string
		src      string
		wantErr  bool
		wantLine int
	}{
		{desc: "clean program", src: "let x = 1;\nconsole.log(x);\n", wantErr: false},
		{desc: "dangling operator", src: "1+", wantErr: true, wantLine: 1},
		{desc: "unclosed brace", src: "{", wantErr: true, wantLine: 1},
		{desc: "error on second line", src: "let x = 1;\nlet y = ;\n", wantErr: true, wantLine: 2},
		{desc: "empty input", src: "", wantErr: false},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			src := []byte(test.src)
			tree, err := Parse(context.Background(), src)
			if err != nil {
				t.Fatalf("Parse() returned error: %v", err)
			}
			serr := FirstSyntaxError(tree, src)
			if (serr != nil) != test.wantErr {
				t.Fatalf("expected error=%v, got %v", test.wantErr, serr)
			}
			if serr != nil && serr.Pos.Line != test.wantLine {
				t.Errorf("expected error on line %d, got %v", test.wantLine, serr.Pos)
			}
		})
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	src := []byte("let y = ;")
	tree, err := Parse(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	serr := FirstSyntaxError(tree, src)
	if serr == nil {
		t.Fatal("expected a syntax error")
	}
	if serr.Error() == "" {
		t.Error("expected a non-empty message")
	}
}

func TestErrorList(t *testing.T) {
	var errs ErrorList
	if errs.ErrOrNil() != nil {
		t.Error("expected nil for an empty list")
	}

	errs = errs.Append(nil)
	if len(errs) != 0 {
		t.Errorf("appending nil grew the list to %d", len(errs))
	}

	errs = errs.Append(errors.New("first"))
	if got, want := errs.Error(), "first"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	nested := ErrorList{errors.New("second"), errors.New("third")}
	errs = errs.Append(nested)
	if len(errs) != 3 {
		t.Fatalf("expected nested list to flatten to 3 errors, got %d", len(errs))
	}
	if got, want := errs.Error(), "first (and 2 more errors)"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	trimmed := errs.Trim(2)
	if len(trimmed) != 3 || !errors.Is(trimmed[2], ErrTooManyErrors) {
		t.Errorf("Trim(2) = %v", trimmed)
	}
}
