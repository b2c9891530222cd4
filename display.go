package machine

import "strings"

// HighlightHead renders the tape with the cell under the head wrapped
// in brackets, e.g. "a[b]ba". A head at or past the end marks the
// position after the content: "abba[]". Rendering only reads the tape.
func HighlightHead(t *Tape, head int) string {
	var b strings.Builder
	n := t.Length()
	if head < 0 {
		b.WriteString("[]")
	}
	for i := 0; i < n; i++ {
		if i == head {
			b.WriteByte('[')
			b.WriteString(string(t.CharAt(i)))
			b.WriteByte(']')
			continue
		}
		b.WriteString(string(t.CharAt(i)))
	}
	if head >= n {
		b.WriteString("[]")
	}
	return b.String()
}
