package sourceutils

import (
	"strings"

	"github.com/walysson-bot/vscode-js-debug/sourcemaps"
)

// PositionToOffset converts an editor location into a byte offset into
// text: the lengths of all preceding lines, plus one per newline, plus
// the column within the line. The result is clamped to [0, len(text)].
func PositionToOffset(text string, pos sourcemaps.UILocation) int {
	offset := 0
	line := 1
	for line < pos.Line {
		nl := strings.IndexByte(text[offset:], '\n')
		if nl == -1 {
			return len(text)
		}
		offset += nl + 1
		line++
	}
	offset += pos.Column - 1
	if offset > len(text) {
		return len(text)
	}
	if offset < 0 {
		return 0
	}
	return offset
}

// OffsetToPosition is the inverse of PositionToOffset. Offsets out of
// range are clamped to the bounds of text.
func OffsetToPosition(text string, offset int) sourcemaps.UILocation {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	line := 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return sourcemaps.UILocation{Line: line, Column: offset - lineStart + 1}
}
