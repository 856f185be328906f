package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.True(t, cfg.Language.CollectionLiterals)
	assert.Equal(t, FormatText, cfg.Format)
	assert.NotNil(t, cfg.Rules)
	assert.False(t, cfg.Fix)
	assert.False(t, cfg.DryRun)
}

func TestSeverity_IsValid(t *testing.T) {
	assert.True(t, SeverityError.IsValid())
	assert.True(t, SeverityWarning.IsValid())
	assert.True(t, SeverityInfo.IsValid())
	assert.False(t, Severity("fatal").IsValid())
	assert.False(t, Severity("").IsValid())
}

func TestOutputFormat_IsValid(t *testing.T) {
	assert.True(t, FormatText.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.False(t, OutputFormat("xml").IsValid())
}

func TestFromYAML(t *testing.T) {
	data := []byte(`
language:
  version: "11"
  collection_literals: false
rules:
  FL0021:
    enabled: true
    severity: warning
    options:
      max_elements: 5
  FL0011:
    enabled: false
`)
	cfg, err := FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "11", cfg.Language.Version)
	assert.False(t, cfg.Language.CollectionLiterals)

	rc, ok := cfg.Rules["FL0021"]
	require.True(t, ok)
	require.NotNil(t, rc.Enabled)
	assert.True(t, *rc.Enabled)
	require.NotNil(t, rc.Severity)
	assert.Equal(t, "warning", *rc.Severity)
	assert.Equal(t, 5, rc.Options["max_elements"])

	rc, ok = cfg.Rules["FL0011"]
	require.True(t, ok)
	require.NotNil(t, rc.Enabled)
	assert.False(t, *rc.Enabled)
	assert.Nil(t, rc.Severity)
}

func TestFromYAML_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := FromYAML([]byte(""))
	require.NoError(t, err)

	assert.True(t, cfg.Language.CollectionLiterals)
	assert.Equal(t, FormatText, cfg.Format)
	assert.NotNil(t, cfg.Rules)
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := FromYAML([]byte("rules: [not, a, map]"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language:\n  version: \"12\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "12", cfg.Language.Version)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestToYAML_RoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Language.Version = "11"
	enabled := false
	cfg.Rules["FL0035"] = RuleConfig{Enabled: &enabled}

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	back, err := FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "11", back.Language.Version)
	rc, ok := back.Rules["FL0035"]
	require.True(t, ok)
	require.NotNil(t, rc.Enabled)
	assert.False(t, *rc.Enabled)
}

func TestRuleOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Rules["FL0021"] = RuleConfig{Options: map[string]any{"max_elements": 3}}

	assert.Equal(t, 3, cfg.RuleOptions("FL0021")["max_elements"])
	assert.Nil(t, cfg.RuleOptions("FL0004"))

	var nilCfg *Config
	assert.Nil(t, nilCfg.RuleOptions("FL0021"))
}
