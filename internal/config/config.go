package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/snipstash/snip/internal/constants"
)

// Config holds the embedding environment's inputs to the engine: where the
// snippet directory lives, which extension marks a snippet, and how to reach
// the external editor and paste mechanism.
type Config struct {
	SnippetsDir string   `yaml:"snippets_dir"  json:"snippets_dir"`
	Extension   string   `yaml:"extension"     json:"extension"`
	Editor      string   `yaml:"editor"        json:"editor"`
	EditorArgs  []string `yaml:"editor_args"   json:"editor_args"`
	EditorWait  bool     `yaml:"editor_wait"   json:"editor_wait"`

	// PasteCmd is the host command that simulates a paste keystroke, e.g.
	// "xdotool" with PasteArgs ["key", "ctrl+v"]. Empty means the host has
	// no paste support and paste actions are not offered.
	PasteCmd  string   `yaml:"paste_cmd"  json:"paste_cmd"`
	PasteArgs []string `yaml:"paste_args" json:"paste_args"`

	home string `yaml:"-"`
}

// DefaultSnippetsDir returns the snippet directory used when the config does
// not name one.
func DefaultSnippetsDir(home string) string {
	return filepath.Join(home, constants.ConfigDir, "snippets")
}

func defaults(home string) *Config {
	return &Config{
		SnippetsDir: DefaultSnippetsDir(home),
		Extension:   constants.DefaultExtension,
		Editor:      constants.DefaultEditor,
		EditorWait:  true,
		home:        home,
	}
}

// Load reads the config file under home, filling defaults for anything the
// file leaves unset.
func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaults(home)
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if cfg.SnippetsDir == "" {
		cfg.SnippetsDir = DefaultSnippetsDir(home)
	}
	if cfg.Extension == "" {
		cfg.Extension = constants.DefaultExtension
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}
	cfg.home = home

	return cfg, nil
}

// Save writes the config back to its file.
func (cfg *Config) Save() error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	path := GetConfigPath(cfg.home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// SupportsPaste reports whether the host configured a paste command.
func (cfg *Config) SupportsPaste() bool {
	return cfg.PasteCmd != ""
}

// EnsureSnippetsDir creates the snippet directory if it is missing.
func (cfg *Config) EnsureSnippetsDir() error {
	if err := os.MkdirAll(cfg.SnippetsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create snippets directory: %w", err)
	}
	return nil
}
