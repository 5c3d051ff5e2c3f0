// Package config holds the cosmetic session settings for prompts.
//
// Settings are read from an optional YAML file and can be overridden with
// NPROMPT_* environment variables (NPROMPT_PROMPT_PREFIX, NPROMPT_RULE_WIDTH,
// and so on).
package config

import (
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "NPROMPT"

// Config is the session configuration shared by every prompt.
type Config struct {
	Prompt     PromptConfig   `mapstructure:"prompt" yaml:"prompt"`
	Rule       RuleConfig     `mapstructure:"rule" yaml:"rule"`
	Password   PasswordConfig `mapstructure:"password" yaml:"password"`
	Capture    CaptureConfig  `mapstructure:"capture" yaml:"capture"`
	Silent     bool           `mapstructure:"silent" yaml:"silent"`
	EchoReturn bool           `mapstructure:"echo_return" yaml:"echo_return"`
}

// PromptConfig controls how a prompt line is drawn.
type PromptConfig struct {
	Prefix string `mapstructure:"prefix" yaml:"prefix"`
	Marker string `mapstructure:"marker" yaml:"marker"`
}

// RuleConfig controls horizontal rules and wrapping.
type RuleConfig struct {
	Width int    `mapstructure:"width" yaml:"width"`
	Char  string `mapstructure:"char" yaml:"char"`
}

// PasswordConfig controls masked entry. An empty mask hides input entirely.
type PasswordConfig struct {
	Mask string `mapstructure:"mask" yaml:"mask"`
}

// CaptureConfig controls challenge prompts.
type CaptureConfig struct {
	Length  int  `mapstructure:"length" yaml:"length"`
	Complex bool `mapstructure:"complex" yaml:"complex"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Prompt: PromptConfig{
			Prefix: "[?] ",
			Marker: ": ",
		},
		Rule: RuleConfig{
			Width: 65,
			Char:  "-",
		},
		Password: PasswordConfig{
			Mask: "*",
		},
		Capture: CaptureConfig{
			Length: 6,
		},
		EchoReturn: true,
	}
}

// RuleRune returns the character used to draw rules.
func (c *Config) RuleRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Rule.Char)
	if r == utf8.RuneError {
		return '-'
	}
	return r
}

// MaskRune returns the password mask and whether one should be echoed.
func (c *Config) MaskRune() (rune, bool) {
	if c.Password.Mask == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.Password.Mask)
	return r, true
}

// Validate checks the values a prompt cannot work without.
func (c *Config) Validate() error {
	if c.Rule.Width < 0 {
		return errors.Newf("rule.width must not be negative, got %d", c.Rule.Width)
	}
	if utf8.RuneCountInString(c.Rule.Char) > 1 {
		return errors.Newf("rule.char must be a single character, got %q", c.Rule.Char)
	}
	if utf8.RuneCountInString(c.Password.Mask) > 1 {
		return errors.Newf("password.mask must be a single character, got %q", c.Password.Mask)
	}
	if c.Capture.Length <= 0 {
		return errors.Newf("capture.length must be positive, got %d", c.Capture.Length)
	}
	return nil
}

// Load reads configuration from path, layered over DefaultConfig and under
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Viper only resolves environment overrides for keys it already knows,
	// so the defaults are merged in as a YAML document first.
	defaults, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, errors.Wrap(err, "marshaling default config")
	}
	v.SetConfigType("yaml")
	if err := v.MergeConfig(bytes.NewReader(defaults)); err != nil {
		return nil, errors.Wrap(err, "loading default config")
	}

	if path != "" {
		fi, err := os.Stat(path)
		switch {
		case err == nil && fi.IsDir():
			return nil, errors.Newf("config path %s is a directory", path)
		case err == nil:
			v.SetConfigFile(path)
			if err := v.MergeInConfig(); err != nil {
				return nil, errors.Wrapf(err, "parsing config file %s", path)
			}
		case !os.IsNotExist(err):
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes configuration to a YAML file
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing config file %s", path)
	}
	return nil
}
