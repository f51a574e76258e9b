package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/yacobolo/stylehooks"
)

const (
	defaultConfigFile = ".stylehooks.yaml"
	defaultMetadata   = "stylehooks.metadata.json"
	envPrefix         = "STYLEHOOKS_"
)

var (
	defaultLintPaths     = []string{"**/*.css", "**/*.html"}
	defaultGenerateFiles = []string{"styles/hooks/**/*.css"}
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set,
	// so unchanged flag defaults never shadow file or env values)
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (STYLEHOOKS_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key. The first word
// selects the section when it names one:
//
//	STYLEHOOKS_LINT_OUTPUT_FORMAT -> lint.output-format
//	STYLEHOOKS_GENERATE_PREFIX    -> generate.prefix
//	STYLEHOOKS_METADATA           -> metadata
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if ok && (section == "lint" || section == "generate") {
		return section + "." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig(log *zap.Logger) stylehooks.LintConfig {
	return stylehooks.LintConfig{
		MetadataPath:       getStringWithFallback("metadata", "metadata", defaultMetadata),
		TokensPath:         getStringWithFallback("tokens", "tokens", ""),
		MessagesPath:       getStringWithFallback("messages", "messages", ""),
		ScanPaths:          getStringsWithFallback("paths", "lint.paths", defaultLintPaths),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		Fix:                getBoolWithFallback("fix", "lint.fix", false),
		FontFallback:       getBoolWithFallback("font-fallback", "lint.font-fallback", true),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
		Logger:             log,
	}
}

// buildGenerateConfig constructs the library's GenerateConfig struct from koanf state.
func buildGenerateConfig(log *zap.Logger) stylehooks.GenerateConfig {
	return stylehooks.GenerateConfig{
		SourcePaths: getStringsWithFallback("source", "generate.source", defaultGenerateFiles),
		OutputPath: getStringWithFallback("output", "generate.output",
			getStringWithFallback("metadata", "metadata", defaultMetadata)),
		Prefix: getStringWithFallback("prefix", "generate.prefix", stylehooks.DefaultHookPrefix),
		Logger: log,
	}
}

// newLogger returns a development logger on stderr when verbose is set,
// and a no-op logger otherwise.
func newLogger() *zap.Logger {
	if !getBoolWithFallback("verbose", "verbose", false) {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback is getStringWithFallback for lists.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
