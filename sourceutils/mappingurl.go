package sourceutils

import "strings"

// ParseSourceMappingURL extracts the URL of the last well-formed
// sourceMappingURL directive in a script:
//
//	//# sourceMappingURL=app.js.map
//
// The directive must be a line comment, the marker may be # or @ (the
// legacy form), and exactly one space or tab separates it from the name.
// The reported URL runs to the end of the line. A quote or embedded
// whitespace in the URL invalidates the whole parse: the second result is
// false and the caller should fall back to other discovery. A directive
// ending the script right after the name yields an empty URL with true.
func ParseSourceMappingURL(content string) (string, bool) {
	const name = "sourceMappingURL"
	pos := len(content)
	for {
		limit := pos + len(name)
		if limit > len(content) {
			limit = len(content)
		}
		idx := strings.LastIndex(content[:limit], name)
		if idx < 4 {
			// Not found, or too close to the start to carry the
			// comment prefix.
			return "", false
		}
		prefix := content[idx-4 : idx]
		if prefix[0] != '/' || prefix[1] != '/' ||
			(prefix[2] != '#' && prefix[2] != '@') ||
			(prefix[3] != ' ' && prefix[3] != '\t') {
			pos = idx - 4
			continue
		}
		eq := idx + len(name)
		if eq < len(content) && content[eq] != '=' {
			pos = idx - 4
			continue
		}
		if eq >= len(content) {
			return "", true
		}
		value := content[eq+1:]
		if nl := strings.IndexByte(value, '\n'); nl != -1 {
			value = value[:nl]
		}
		value = strings.TrimSpace(value)
		for i := 0; i < len(value); i++ {
			switch value[i] {
			case '"', '\'', ' ', '\t':
				return "", false
			}
		}
		return value, true
	}
}
