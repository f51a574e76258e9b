package stylehooks

import (
	"fmt"
	"io"
)

// VerboseReporter handles detailed statistics and suggestions
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Styling Hook Statistics", r.useColors))
	fmt.Fprintln(r.w, "-----------------------")

	fmt.Fprintf(r.w, "Files Scanned:           %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Declarations Scanned:    %d\n", result.DeclarationsScanned)
	fmt.Fprintf(r.w, "Hardcoded Values:        %d\n", result.HardcodedValues)
	fmt.Fprintf(r.w, "  With Replacement:      %d\n", result.WithReplacement)
	fmt.Fprintf(r.w, "  No Replacement:        %d\n", result.NoReplacement)
	fmt.Fprintf(r.w, "Auto-fixable:            %d\n", result.Fixable)
	fmt.Fprintf(r.w, "Deprecated Tokens:       %d\n", result.DeprecatedTokens)
	fmt.Fprintf(r.w, "Missing Font Fallbacks:  %d\n", result.FontFallbacks)
	fmt.Fprintf(r.w, "Misused Hooks:           %d\n", result.MisusedHooks)
	if result.FixedCount > 0 {
		fmt.Fprintf(r.w, "Fixed:                   %d\n", result.FixedCount)
	}
}

// PrintReplacementCoverage shows how many hardcoded values have a hook
func (r *VerboseReporter) PrintReplacementCoverage(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Replacement Coverage", r.useColors))
	fmt.Fprintln(r.w, "--------------------")
	printProgressBar(r.w, result.ReplacementCoverage())
}

// PrintQuickWins shows the most frequent auto-fixable values
func (r *VerboseReporter) PrintQuickWins(result LintResult) {
	if len(result.QuickWins) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Quick Wins", r.useColors))
	fmt.Fprintln(r.w, "-------------")

	for i, win := range result.QuickWins {
		fmt.Fprintf(r.w, "%d. %q - %s → Use var(%s)\n",
			i+1, win.Value, pluralizeCount(win.Occurrences, "occurrence", "occurrences"), win.Hook)
	}
}

// PrintWarnings shows files that could not be scanned
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
