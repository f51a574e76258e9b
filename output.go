package stylehooks

import (
	"io"
	"os"
)

// DetermineOutputFormat selects the output format from flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}

	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns the default output format.
// Like golangci-lint: issues only.
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		verboseReporter := NewVerboseReporter(w, shouldUseColors(config))
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintReplacementCoverage(*result)
		verboseReporter.PrintQuickWins(*result)
		verboseReporter.PrintWarnings(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verboseReporter := NewVerboseReporter(w, reporter.UseColors())
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintReplacementCoverage(*result)
		verboseReporter.PrintQuickWins(*result)
		verboseReporter.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}
