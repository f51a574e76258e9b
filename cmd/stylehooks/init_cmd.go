package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default " + defaultConfigFile + " config file",
	Long:  `Create a ` + defaultConfigFile + ` configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# stylehooks configuration
# Docs: https://github.com/yacobolo/stylehooks

# Shared settings
metadata: stylehooks.metadata.json
# tokens: deprecated-tokens.yaml   # legacy token -> hook table
# messages: messages.yaml          # override built-in message texts
verbose: false

# Metadata generation
generate:
  source:
    - "styles/hooks/**/*.css"
  output: stylehooks.metadata.json
  prefix: "--"

# Linting settings
lint:
  paths:
    - "**/*.css"
    - "**/*.html"
  strict: false
  fix: false
  font-fallback: true
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
