package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nprompt.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "[?] ", cfg.Prompt.Prefix)
	assert.Equal(t, ": ", cfg.Prompt.Marker)
	assert.Equal(t, 65, cfg.Rule.Width)
	assert.True(t, cfg.EchoReturn)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nprompt.yml")
	data := []byte(`prompt:
  prefix: ">> "
rule:
  width: 40
  char: "="
silent: true
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ">> ", cfg.Prompt.Prefix)
	assert.Equal(t, ": ", cfg.Prompt.Marker, "keys absent from the file keep their defaults")
	assert.Equal(t, 40, cfg.Rule.Width)
	assert.Equal(t, '=', cfg.RuleRune())
	assert.True(t, cfg.Silent)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nprompt.yml")
	require.NoError(t, os.WriteFile(path, []byte("rule:\n  width: 40\n"), 0644))

	t.Setenv("NPROMPT_RULE_WIDTH", "72")
	t.Setenv("NPROMPT_PASSWORD_MASK", "#")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 72, cfg.Rule.Width)
	mask, shown := cfg.MaskRune()
	assert.True(t, shown)
	assert.Equal(t, '#', mask)
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nprompt.yml")
	require.NoError(t, os.WriteFile(path, []byte("capture:\n  length: 0\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capture.length")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative width", func(c *Config) { c.Rule.Width = -1 }, true},
		{"long rule char", func(c *Config) { c.Rule.Char = "==" }, true},
		{"long mask", func(c *Config) { c.Password.Mask = "**" }, true},
		{"empty mask hides input", func(c *Config) { c.Password.Mask = "" }, false},
		{"zero capture length", func(c *Config) { c.Capture.Length = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaskRune_Empty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Password.Mask = ""
	_, shown := cfg.MaskRune()
	assert.False(t, shown)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nprompt.yml")
	cfg := DefaultConfig()
	cfg.Prompt.Marker = " > "
	cfg.Capture.Complex = true

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
