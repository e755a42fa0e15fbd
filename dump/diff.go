package dump

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/treebind/treebind/node"
)

// Diff renders both trees and returns a line-oriented diff, empty when the
// renderings agree. Lines only in a are prefixed "- ", lines only in b "+ ".
func Diff(a, b node.Node) string {
	at, bt := Sprint(a), Sprint(b)
	if at == bt {
		return ""
	}
	dmp := diffpatch.New()
	runesA, runesB, lines := dmp.DiffLinesToRunes(at, bt)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(runesA, runesB, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			out.WriteString(prefix)
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	return out.String()
}
