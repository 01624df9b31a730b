// Package config loads copyscope configuration from TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all copyscope configuration.
type Config struct {
	DatabasePath string `toml:"database_path"`
	TaxonomyPath string `toml:"taxonomy_path"`
	InboxDir     string `toml:"inbox_dir"`

	Analyze AnalyzeConfig `toml:"analyze"`
	Output  OutputConfig  `toml:"output"`
}

type AnalyzeConfig struct {
	Workers int  `toml:"workers"`
	Persist bool `toml:"persist"`
}

type OutputConfig struct {
	Markdown bool `toml:"markdown"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DatabasePath: "~/.local/share/copyscope/copyscope.db",
		TaxonomyPath: "",
		InboxDir:     "~/copyscope/inbox",
		Analyze: AnalyzeConfig{
			Workers: 4,
			Persist: true,
		},
		Output: OutputConfig{
			Markdown: false,
		},
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	cfg.DatabasePath = expandHome(cfg.DatabasePath)
	cfg.TaxonomyPath = expandHome(cfg.TaxonomyPath)
	cfg.InboxDir = expandHome(cfg.InboxDir)

	return cfg, nil
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "copyscope", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "copyscope", "config.toml"))
	}

	return paths
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
