package stylehooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testMetadata = `{
  "#0176d3": [{"name": "--slds-g-color-accent-1", "properties": ["color", "background-color", "border-color"], "group": "theme"}],
  "#c9c9c9": [{"name": "--slds-g-color-border-1", "properties": ["border-color"], "group": "borders"}],
  "1rem": [{"name": "--slds-g-spacing-4", "properties": ["margin", "padding"]}],
  "0.5rem": [
    {"name": "--slds-g-spacing-2", "properties": ["margin", "padding"]},
    {"name": "--slds-g-spacing-alt-2", "properties": ["padding"]}
  ]
}`

const testTokens = `
--lwc-brandPrimary: --slds-g-color-accent-1
--lwc-heightHeader: Use a sizing hook that fits the layout.
`

const testStylesheet = `.card {
  color: #0176d3;
  margin: 16px 0;
  padding: 0.5rem;
  background: #123456;
}
`

// writeTestFile writes content to name inside dir and returns its path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// lintDir writes the test metadata into a fresh directory and returns a
// config scanning *.css and *.html files in it.
func lintDir(t *testing.T) (string, LintConfig) {
	t.Helper()
	dir := t.TempDir()
	return dir, LintConfig{
		MetadataPath: writeTestFile(t, dir, "metadata.json", testMetadata),
		ScanPaths: []string{
			filepath.Join(dir, "**", "*.css"),
			filepath.Join(dir, "**", "*.html"),
		},
	}
}
