package domain

// Config represents the catcount configuration loaded from catcount.yaml.
type Config struct {
	Categories []string
	Report     ReportConfig
	Log        LogConfig
}

type ReportConfig struct {
	Format string
}

type LogConfig struct {
	Enabled bool
}

// Report formats understood by the report renderer.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// DefaultConfig provides sane defaults if catcount.yaml is missing or partial.
func DefaultConfig() Config {
	cats := make([]string, len(DefaultCategories))
	copy(cats, DefaultCategories)
	return Config{
		Categories: cats,
		Report:     ReportConfig{Format: FormatText},
	}
}

// LegalSet builds the legal category set described by the config.
func (c Config) LegalSet() LegalSet {
	return NewLegalSet(c.Categories...)
}
