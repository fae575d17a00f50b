package headerindex

import (
	"fmt"
	"io"
)

// Print writes idx's entries to w, one per line: the header path
// left-justified and padded to the widest entry, a tab, then the
// canonical target.
func Print(w io.Writer, idx *Index) {
	entries := idx.Entries()
	width := 0
	for _, e := range entries {
		if len(e.HeaderPath) > width {
			width = len(e.HeaderPath)
		}
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%-*s\t%s\n", width, e.HeaderPath, e.Target.String())
	}
}
