package configfinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/catcount/internal/domain"
)

// LoadConfig loads catcount.yaml from root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return LoadConfigFile(filepath.Join(root, ConfigFileName))
}

// LoadConfigFile loads a config file from an explicit path and applies defaults.
func LoadConfigFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindConfigNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Catcount.Categories != nil {
		cats, err := normalizeCategories(y.Catcount.Categories)
		if err != nil {
			return cfg, invalidField(path, "catcount.categories", err.Error())
		}
		cfg.Categories = cats
	}
	if y.Catcount.Report.Format != "" {
		format, err := ParseFormat(y.Catcount.Report.Format)
		if err != nil {
			return cfg, invalidField(path, "catcount.report.format", err.Error())
		}
		cfg.Report.Format = format
	}
	if y.Catcount.Log.Enabled != nil {
		cfg.Log.Enabled = *y.Catcount.Log.Enabled
	}

	return cfg, nil
}

// ApplyCategories replaces the configured categories (e.g., from CLI flags).
// An empty override leaves cfg untouched.
func ApplyCategories(cfg domain.Config, override []string) (domain.Config, error) {
	if len(override) == 0 {
		return cfg, nil
	}
	cats, err := normalizeCategories(override)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.categories",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%s: %w", err.Error(), domain.ErrInvalidConfig),
		}
	}
	cfg.Categories = cats
	return cfg, nil
}

// ParseFormat validates a report format name.
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	switch f {
	case domain.FormatText, domain.FormatJSON, domain.FormatPretty:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected text|json|pretty)", s)
	}
}

// normalizeCategories rejects names that could never match a classified line.
// Names are otherwise kept verbatim; matching is case-sensitive.
func normalizeCategories(in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("at least one category is required")
	}
	out := make([]string, 0, len(in))
	for i, c := range in {
		if c == "" || strings.Contains(c, " ") {
			return nil, fmt.Errorf("category[%d] %q must be a non-empty name without spaces", i, c)
		}
		out = append(out, c)
	}
	return out, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "configfinder.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Catcount struct {
		Categories []string `yaml:"categories"`

		Report struct {
			Format string `yaml:"format"`
		} `yaml:"report"`

		Log struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"log"`
	} `yaml:"catcount"`
}
