// Package inspect renders human-readable differences between two snapshots
// of a Region's live content, for use in tests and in arenabench's verify
// subcommand when checking the idempotence property from spec §8: gc() run
// twice on an unchanged graph should produce identical per-object content.
package inspect

import (
	"fmt"
	"strings"

	"github.com/andreyvit/diff"
)

// Snapshot pairs an index's textual position with a rendering of the value
// found there. Callers build these by walking a Region (e.g. Root.Ix()
// paired with fmt.Sprintf("%+v", *value)) before and after the operation
// under test.
type Snapshot struct {
	Label   string
	Content string
}

func render(snaps []Snapshot) string {
	var b strings.Builder
	for _, s := range snaps {
		fmt.Fprintf(&b, "%s: %s\n", s.Label, s.Content)
	}
	return b.String()
}

// Diff returns a unified-style textual diff between two snapshot sets, or
// the empty string if they render identically. Grounded on the teacher's
// own content-diff package, trimmed to the line-tagging the underlying
// library already provides rather than re-deriving hunk windowing.
func Diff(before, after []Snapshot) string {
	a, b := render(before), render(after)
	if a == b {
		return ""
	}
	lines := diff.LineDiffAsLines(a, b)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n")
}
