package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/compound"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// renderDrift writes how far the last row is from its exact value.
// It reports false when there is no row, no exact value, or no drift.
func renderDrift(w io.Writer, rows []compound.Projection) bool {
	if len(rows) == 0 {
		return false
	}
	last := rows[len(rows)-1]
	exact, err := last.Exact()
	if err != nil {
		return false
	}
	drift := exact.Sub(last.Final.Decimal())
	if drift.IsZero() {
		return false
	}
	fmt.Fprintf(w, "\nWithout truncation the final amount would be %s (%s more).\n", exact.StringFixed(2), drift.StringFixed(2))
	return true
}
