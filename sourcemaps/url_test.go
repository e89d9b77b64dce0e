package sourcemaps

import "testing"

func TestResolveSourceMapURL(t *testing.T) {
	tests := []struct {
		desc     string
		compiled string
		url      string
		want     string
	}{
		{desc: "sibling file", compiled: "/srv/js/app.min.js", url: "app.min.js.map", want: "/srv/js/app.min.js.map"},
		{desc: "parent directory", compiled: "/srv/js/app.min.js", url: "../maps/app.min.js.map", want: "/srv/maps/app.min.js.map"},
		{desc: "absolute path", compiled: "/srv/js/app.min.js", url: "/var/maps/app.map", want: "/var/maps/app.map"},
		{desc: "full url", compiled: "/srv/js/app.min.js", url: "https://cdn.example.com/app.map", want: "https://cdn.example.com/app.map"},
		{desc: "data uri", compiled: "/srv/js/app.min.js", url: "data:application/json;base64,e30=", want: "data:application/json;base64,e30="},
		{desc: "empty", compiled: "/srv/js/app.min.js", url: "", want: ""},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			if got := ResolveSourceMapURL(test.compiled, test.url); got != test.want {
				t.Errorf("expected %q, got %q", test.want, got)
			}
		})
	}
}

func TestDecodeDataURI(t *testing.T) {
	tests := []struct {
		desc string
		uri  string
		want string
		ok   bool
	}{
		{desc: "base64", uri: "data:application/json;base64,eyJ2ZXJzaW9uIjozfQ==", want: `{"version":3}`, ok: true},
		{desc: "percent encoded", uri: "data:application/json,%7B%22version%22%3A3%7D", want: `{"version":3}`, ok: true},
		{desc: "not a data uri", uri: "https://example.com/app.map", ok: false},
		{desc: "missing payload", uri: "data:application/json", ok: false},
		{desc: "broken base64", uri: "data:;base64,!!!", ok: false},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got, ok := DecodeDataURI(test.uri)
			if ok != test.ok {
				t.Fatalf("expected ok=%v, got ok=%v", test.ok, ok)
			}
			if ok && string(got) != test.want {
				t.Errorf("expected %q, got %q", test.want, string(got))
			}
		})
	}
}
