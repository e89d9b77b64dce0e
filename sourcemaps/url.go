package sourcemaps

import (
	"encoding/base64"
	"net/url"
	"path/filepath"
	"strings"
)

// ResolveSourceMapURL resolves a sourceMappingURL value against the path of
// the compiled script it was found in. Absolute paths, full URLs and data:
// URIs pass through unchanged.
func ResolveSourceMapURL(compiledPath, sourceMapURL string) string {
	if sourceMapURL == "" {
		return ""
	}
	if strings.HasPrefix(sourceMapURL, "data:") ||
		strings.Contains(sourceMapURL, "://") ||
		filepath.IsAbs(sourceMapURL) {
		return sourceMapURL
	}
	return filepath.Join(filepath.Dir(compiledPath), filepath.FromSlash(sourceMapURL))
}

// DecodeDataURI extracts the payload of an inline data: URI. It reports
// false when the argument is not a data: URI or the payload does not
// decode.
func DecodeDataURI(uri string) ([]byte, bool) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, false
	}
	media, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, false
	}
	if strings.HasSuffix(media, ";base64") {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, false
		}
		return b, true
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, false
	}
	return []byte(s), true
}
