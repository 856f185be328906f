// Package config defines core configuration types for flint.
// These types are pure data structures with no dependency on the loader.
package config

// Severity represents the severity level of a finding.
type Severity string

// Severity levels, ordered from most to least severe.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is a known level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	AutoFix  *bool          `yaml:"auto_fix"`
	Options  map[string]any `yaml:"options"`
}

// LanguageConfig describes which source-language features the target
// compilation supports. The front end records the effective language
// version; rules consult these flags when registering fixes.
type LanguageConfig struct {
	// Version is the effective language version string, informational.
	Version string `yaml:"version"`

	// CollectionLiterals is true when the inline collection-literal
	// syntax is legal in the target file. When false, rules that
	// rewrite into literals still report findings but attach no fix.
	CollectionLiterals bool `yaml:"collection_literals"`
}

// OutputFormat specifies the output format for findings.
type OutputFormat string

// Supported output formats.
const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the format is supported.
func (f OutputFormat) IsValid() bool {
	return f == FormatText || f == FormatJSON
}

// Config is the resolved flint configuration.
type Config struct {
	// Language describes the target language feature set.
	Language LanguageConfig `yaml:"language"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// CLI-level options (not persisted to config files).

	// Fix enables applying fixes to analyzed documents.
	Fix bool `yaml:"-"`

	// DryRun shows what would be fixed without writing changes.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// Workers specifies parallel rule evaluation within one document.
	// 0 or 1 means sequential.
	Workers int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`

	// FixRules limits fix application to specific rule IDs.
	FixRules []string `yaml:"-"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Language: LanguageConfig{
			CollectionLiterals: true,
		},
		Rules:  make(map[string]RuleConfig),
		Format: FormatText,
	}
}

// RuleOptions returns the options map for a rule, or nil.
func (c *Config) RuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	if rc, ok := c.Rules[ruleID]; ok {
		return rc.Options
	}
	return nil
}
