package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *SettingsConfig
	Strings  Strings
}

// Strings maps UI localisation keys ("@interaction_examine") to display text
type Strings map[string]string

// Lookup returns the text for key, or the key without its "@" prefix when
// there is no entry.
func (s Strings) Lookup(key string) string {
	if text, ok := s[key]; ok {
		return text
	}
	return strings.TrimPrefix(key, "@")
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSettings loads settings.json
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "settings.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read settings.json: %w", err)
	}

	var cfg SettingsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings.json: %w", err)
	}

	return &cfg, nil
}

// LoadStrings loads strings.yaml
func (l *Loader) LoadStrings() (Strings, error) {
	data, err := fs.ReadFile(l.fsys, "strings.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read strings.yaml: %w", err)
	}

	var s Strings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse strings.yaml: %w", err)
	}

	return s, nil
}

// LoadLevel loads and validates a level YAML file
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	path := "levels/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (settings, strings)
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	strs, err := l.LoadStrings()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
		Strings:  strs,
	}, nil
}
