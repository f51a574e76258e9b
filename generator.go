package stylehooks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/yacobolo/stylehooks/internal/hooks"
)

// DefaultHookPrefix selects every custom property as a hook.
const DefaultHookPrefix = "--"

// GenerateMetadata reads stylesheets that define styling hooks as custom
// properties and writes the value-to-hooks metadata the linter loads.
// The first definition of a hook wins, so theme overrides later in the
// sources do not add duplicates.
func GenerateMetadata(config GenerateConfig) (*GenerateResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("generator")

	files, err := scanCSSFiles(config.SourcePaths)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no stylesheets match %s", strings.Join(config.SourcePaths, ", "))
	}

	result := &GenerateResult{FilesScanned: len(files)}
	mapping := buildMapping(files, config.Prefix, result, log)
	result.ValuesMapped = mapping.Len()

	if mapping.Len() == 0 {
		return nil, fmt.Errorf("generate: %w", hooks.ErrEmptyMapping)
	}

	if config.OutputPath != "" {
		if err := writeMapping(config.OutputPath, mapping); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
	}

	return result, nil
}

// scanCSSFiles finds all files matching the patterns, deduplicated
func scanCSSFiles(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, f := range matches {
			if seen[f] {
				continue
			}
			if info, err := os.Stat(f); err != nil || info.IsDir() {
				continue
			}
			seen[f] = true
			files = append(files, f)
		}
	}

	return files, nil
}

func buildMapping(files []string, prefix string, result *GenerateResult, log *zap.Logger) *hooks.Mapping {
	if prefix == "" {
		prefix = DefaultHookPrefix
	}

	mapping := hooks.NewMapping()
	defined := make(map[string]bool)

	for _, path := range files {
		file, err := ScanFile(path)
		if err != nil {
			log.Warn("skipping file", zap.String("file", path), zap.Error(err))
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to parse %s: %v", path, err))
			continue
		}

		for _, decl := range file.Declarations {
			name := decl.Property
			if !strings.HasPrefix(name, "--") || !strings.HasPrefix(name, prefix) || defined[name] {
				continue
			}
			defined[name] = true

			key, kind, ok := classifyHookValue(name, decl.Value)
			if !ok {
				result.Skipped = append(result.Skipped, name)
				continue
			}
			group, properties, ok := categorizeHook(name, kind)
			if !ok {
				result.Skipped = append(result.Skipped, name)
				continue
			}

			mapping.Add(key, hooks.Entry{Name: name, Properties: properties, Group: group})
			result.HooksFound++
			log.Debug("hook", zap.String("name", name), zap.String("value", key), zap.String("group", group))
		}
	}

	return mapping
}

func writeMapping(path string, mapping *hooks.Mapping) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	// #nosec G304 - path comes from trusted configuration
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := mapping.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
