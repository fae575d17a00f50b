// Package posmap maps byte offsets within a file's content buffer back
// to human-readable line:column positions, the way a scanner would
// otherwise have to recompute on every error message.
package posmap

import (
	"fmt"
	"sort"
	"unsafe"
)

// Map accumulates the byte offset of every newline seen while a file is
// scanned and, given a byte offset (or a sub-slice of the original
// content), reports the corresponding line:column range.
//
// A Map is built incrementally during scanning via PushNewline and is
// read-only once scanning of its file is complete.
type Map struct {
	content []byte
	// newlineOffsets[i] is the byte offset of the start of line i+2
	// (line 1 always starts at offset 0, so it is implicit).
	newlineOffsets []int
}

// New creates a Map for the given content. Line 1's start at offset 0
// is implicit; the scanner that owns this Map calls PushNewline with
// the offset just past every newline it encounters.
func New(content []byte) *Map {
	return &Map{content: content}
}

// PushNewline records that a new line begins at byte offset.
func (m *Map) PushNewline(offset int) {
	if len(m.newlineOffsets) == 0 && offset == 0 {
		// The implicit start-of-line-1 marker; nothing to store.
		return
	}
	if n := len(m.newlineOffsets); n > 0 && m.newlineOffsets[n-1] == offset {
		return // idempotent re-push, e.g. from Peek() re-scanning.
	}
	m.newlineOffsets = append(m.newlineOffsets, offset)
}

// lineColAt returns the 1-based line and column for a byte offset.
func (m *Map) lineColAt(offset int) (line, col int) {
	// newlineOffsets[i] is where line i+2 begins, so the number of
	// entries <= offset gives how many newlines precede it.
	idx := sort.Search(len(m.newlineOffsets), func(i int) bool {
		return m.newlineOffsets[i] > offset
	})
	line = idx + 1
	lineStart := 0
	if idx > 0 {
		lineStart = m.newlineOffsets[idx-1]
	}
	col = offset - lineStart + 1
	return line, col
}

// offsetOf returns the byte offset of sub within the Map's content
// buffer, or -1 if sub is not a sub-slice of it. Every Token.Text
// handed to GetRange is a slice of the exact same backing array as
// content (scanner never copies), so pointer arithmetic recovers the
// offset in O(1) instead of a content.Index(sub) scan that could match
// the wrong occurrence.
func (m *Map) offsetOf(sub string) int {
	if len(sub) == 0 {
		return len(m.content)
	}
	if len(m.content) == 0 {
		return -1
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(m.content)))
	addr := uintptr(unsafe.Pointer(unsafe.StringData(sub)))
	if addr >= base && addr < base+uintptr(len(m.content)) {
		return int(addr - base)
	}
	return -1
}

// GetRange reports the "line:col" or "line:col-col" range spanned by
// sub, a substring view into this Map's content.
func (m *Map) GetRange(sub string) string {
	start := m.offsetOf(sub)
	if start < 0 {
		return "?:?"
	}
	startLine, startCol := m.lineColAt(start)
	if len(sub) <= 1 {
		return fmt.Sprintf("%d:%d", startLine, startCol)
	}
	endLine, endCol := m.lineColAt(start + len(sub) - 1)
	if endLine == startLine {
		return fmt.Sprintf("%d:%d-%d", startLine, startCol, endCol)
	}
	return fmt.Sprintf("%d:%d-%d:%d", startLine, startCol, endLine, endCol)
}
