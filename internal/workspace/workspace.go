package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const BaseDirName = "Stylometer"

const settingsFile = "settings.yaml"

type Settings struct {
	Workers     int    `yaml:"workers"`
	Parallel    bool   `yaml:"parallel"`
	DBPath      string `yaml:"db_path"`
	LexiconPath string `yaml:"lexicon_path"`
	WindowWords int    `yaml:"window_words"`
	StrideWords int    `yaml:"stride_words"`
	LogFormat   string `yaml:"log_format"`
	MetricsPath string `yaml:"metrics_path"`
}

func DefaultSettings(root string) Settings {
	return Settings{
		Workers:     0,
		Parallel:    true,
		DBPath:      filepath.Join(root, "cache", "vectors.db"),
		WindowWords: 500,
		StrideWords: 250,
		LogFormat:   "text",
		MetricsPath: filepath.Join(root, "metrics", "stylometer.prom"),
	}
}

func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "cache"),
		filepath.Join(base, "logs"),
		filepath.Join(base, "metrics"),
		filepath.Join(base, "reports"),
	}

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	settingsPath := SettingsPath(base)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		raw, marshalErr := yaml.Marshal(DefaultSettings(base))
		if marshalErr != nil {
			return "", fmt.Errorf("marshal settings: %w", marshalErr)
		}
		if writeErr := os.WriteFile(settingsPath, raw, 0o644); writeErr != nil {
			return "", fmt.Errorf("write settings: %w", writeErr)
		}
	}

	return base, nil
}

func SettingsPath(root string) string {
	return filepath.Join(root, "configs", settingsFile)
}

// LoadSettings reads configs/settings.yaml, fills unset keys with defaults and
// applies STYLO_* environment overrides on top.
func LoadSettings(root string) (Settings, error) {
	s := DefaultSettings(root)
	raw, err := os.ReadFile(SettingsPath(root))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return s, fmt.Errorf("read settings: %w", err)
	default:
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return s, fmt.Errorf("decode settings: %w", err)
		}
	}
	s.applyEnv()
	return s, s.Validate()
}

func (s *Settings) applyEnv() {
	s.Workers = getenvInt("STYLO_WORKERS", s.Workers)
	s.Parallel = getenvBool("STYLO_PARALLEL", s.Parallel)
	s.WindowWords = getenvInt("STYLO_WINDOW_WORDS", s.WindowWords)
	s.StrideWords = getenvInt("STYLO_STRIDE_WORDS", s.StrideWords)
	s.DBPath = getenvString("STYLO_DB_PATH", s.DBPath)
	s.LexiconPath = getenvString("STYLO_LEXICON_PATH", s.LexiconPath)
	s.LogFormat = getenvString("STYLO_LOG_FORMAT", s.LogFormat)
	s.MetricsPath = getenvString("STYLO_METRICS_PATH", s.MetricsPath)
}

func (s Settings) Validate() error {
	if s.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", s.Workers)
	}
	if s.WindowWords <= 0 {
		return fmt.Errorf("window_words must be > 0, got %d", s.WindowWords)
	}
	if s.StrideWords <= 0 {
		return fmt.Errorf("stride_words must be > 0, got %d", s.StrideWords)
	}
	if s.StrideWords > s.WindowWords {
		return fmt.Errorf("stride_words (%d) must not exceed window_words (%d)", s.StrideWords, s.WindowWords)
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", s.LogFormat)
	}
	return nil
}

func getenvInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getenvBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	return raw == "1" || raw == "true" || raw == "yes" || raw == "on"
}

func getenvString(name, fallback string) string {
	if raw := strings.TrimSpace(os.Getenv(name)); raw != "" {
		return raw
	}
	return fallback
}
