package dwyu

import (
	"fmt"
	"io"
)

// Print writes one line per edit to w, in the order Run produced them.
func Print(w io.Writer, edits []Edit) {
	for _, e := range edits {
		fmt.Fprintln(w, e.String())
	}
}
