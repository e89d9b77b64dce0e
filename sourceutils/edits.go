package sourceutils

import "sort"

// TextEdit replaces the half-open byte range [Start, End) of a string
// with Text. Start == End is a pure insertion. Offsets always refer to
// the text as it was before any edit was applied.
type TextEdit struct {
	Start int
	End   int
	Text  string
}

// ApplyTextEdits applies edits back to front, so that every edit's
// offsets stay valid against the original text. Edits starting at the
// same offset are applied in slice order.
func ApplyTextEdits(text string, edits []TextEdit) string {
	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start > sorted[j].Start
	})
	for _, e := range sorted {
		text = text[:e.Start] + e.Text + text[e.End:]
	}
	return text
}
