package stylehooks

import (
	"sort"
	"strings"
)

// ApplyFixes applies the Replacement of every issue to content and reports,
// per issue, whether it was applied. Replacements are applied right to left
// by offset so earlier offsets stay valid. A replacement is skipped when it
// overlaps one already applied or when the text at its offset is no longer
// the reported value, which makes a second run a no-op.
func ApplyFixes(content string, issues []Issue) (string, []bool) {
	applied := make([]bool, len(issues))

	order := make([]int, 0, len(issues))
	for i, issue := range issues {
		if issue.Replacement != nil {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return issues[order[a]].Pos.Offset > issues[order[b]].Pos.Offset
	})

	var b strings.Builder
	tail := len(content)
	var parts []string

	for _, i := range order {
		issue := issues[i]
		start := issue.Pos.Offset
		end := start + issue.Replacement.InlineLength
		if start < 0 || end > tail || content[start:end] != issue.Value {
			continue
		}
		parts = append(parts, content[end:tail], issue.Replacement.NewText)
		tail = start
		applied[i] = true
	}

	b.Grow(len(content))
	b.WriteString(content[:tail])
	for j := len(parts) - 1; j >= 0; j-- {
		b.WriteString(parts[j])
	}
	return b.String(), applied
}
