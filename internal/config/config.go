package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AnalysisConfig bounds the Kasiski examination.
type AnalysisConfig struct {
	MaxKeyLength  int `yaml:"max_key_length"`
	TopCandidates int `yaml:"top_candidates"`
}

// ManualConfig is the exhaustive key length range tried after the ranked
// candidates run out.
type ManualConfig struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
}

// AutoOracleConfig configures the non-interactive accept-after-N oracle.
type AutoOracleConfig struct {
	RejectFirst int `yaml:"reject_first"`
}

// ScriptOracleConfig configures a fixed y/n answer list.
type ScriptOracleConfig struct {
	Answers []string `yaml:"answers"`
}

// OracleConfig selects and configures the confirmation oracle.
type OracleConfig struct {
	Type   string              `yaml:"type"`
	Auto   *AutoOracleConfig   `yaml:"auto,omitempty"`
	Script *ScriptOracleConfig `yaml:"script,omitempty"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Analysis     AnalysisConfig `yaml:"analysis"`
	Manual       ManualConfig   `yaml:"manual"`
	PreviewChars int            `yaml:"preview_chars"`
	Oracle       OracleConfig   `yaml:"oracle"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./vigcrack.yaml first, then ~/.config/vigcrack/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "vigcrack.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vigcrack", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Analysis:     AnalysisConfig{MaxKeyLength: 15, TopCandidates: 3},
		Manual:       ManualConfig{MinLength: 5, MaxLength: 15},
		PreviewChars: 100,
		Oracle:       OracleConfig{Type: "tui"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Analysis.MaxKeyLength < 2 {
		cfg.Analysis.MaxKeyLength = 15
	}
	if cfg.Analysis.TopCandidates < 1 {
		cfg.Analysis.TopCandidates = 3
	}
	if cfg.Manual.MinLength < 1 {
		cfg.Manual.MinLength = 5
	}
	if cfg.Manual.MaxLength < cfg.Manual.MinLength {
		cfg.Manual.MaxLength = 15
	}
	if cfg.PreviewChars <= 0 {
		cfg.PreviewChars = 100
	}
	if cfg.Oracle.Type == "" {
		cfg.Oracle.Type = "tui"
	}
}
