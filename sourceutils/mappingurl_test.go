package sourceutils

import "testing"

func TestParseSourceMappingURL(t *testing.T) {
	tests := []struct {
		desc    string
		content string
		want    string
		ok      bool
	}{
		{desc: "hash directive", content: "code();\n//# sourceMappingURL=app.js.map", want: "app.js.map", ok: true},
		{desc: "legacy at directive", content: "//@ sourceMappingURL=app.js.map", want: "app.js.map", ok: true},
		{desc: "tab separator", content: "//#\tsourceMappingURL=app.js.map", want: "app.js.map", ok: true},
		{desc: "url runs to end of line", content: "//# sourceMappingURL=a.map\nmore();", want: "a.map", ok: true},
		{desc: "windows line ending", content: "//# sourceMappingURL=a.map\r\n", want: "a.map", ok: true},
		{desc: "surrounding spaces trimmed", content: "//# sourceMappingURL=  a.map  ", want: "a.map", ok: true},
		{desc: "last directive wins", content: "//# sourceMappingURL=one.map\ncode();\n//# sourceMappingURL=two.map", want: "two.map", ok: true},
		{desc: "name ends the script", content: "//# sourceMappingURL", want: "", ok: true},
		{desc: "data uri value", content: "//# sourceMappingURL=data:application/json;base64,e30=", want: "data:application/json;base64,e30=", ok: true},
		{desc: "no directive", content: "var x = 1;", ok: false},
		{desc: "empty content", content: "", ok: false},
		{desc: "block comment rejected", content: "/*# sourceMappingURL=a.map */", ok: false},
		{desc: "missing separator", content: "//#sourceMappingURL=a.map", ok: false},
		{desc: "missing equals sign", content: "//# sourceMappingURLa.map", ok: false},
		{desc: "quoted url rejects the parse", content: "//# sourceMappingURL=\"a.map\"", ok: false},
		{desc: "single quoted url rejects the parse", content: "//# sourceMappingURL='a.map'", ok: false},
		{desc: "space inside url rejects the parse", content: "//# sourceMappingURL=a b.map", ok: false},
		{desc: "mention without comment prefix", content: "var sourceMappingURL = 5;", ok: false},
		{desc: "non-comment mention before real directive", content: "var sourceMappingURL = 5;\n//# sourceMappingURL=real.map", want: "real.map", ok: true},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got, ok := ParseSourceMappingURL(test.content)
			if ok != test.ok {
				t.Fatalf("expected ok=%v, got ok=%v (url %q)", test.ok, ok, got)
			}
			if got != test.want {
				t.Errorf("expected %q, got %q", test.want, got)
			}
		})
	}
}
