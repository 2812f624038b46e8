package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kedrogen-labs/kedrogen/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Viper keys.
const (
	keyAbbreviations = "abbreviations"
	keyTemplatesDir  = "templates_dir"
)

// defaultAbbreviations mirrors cookiecutter's built-in shorthand table. The
// %s placeholder receives the "owner/repo" remainder of the source string.
var defaultAbbreviations = map[string]string{
	"gh":        "https://github.com/%s.git",
	"gl":        "https://gitlab.com/%s.git",
	"bb":        "https://bitbucket.org/%s",
	"bitbucket": "https://bitbucket.org/%s",
}

// Dir returns the path to the kedrogen config directory (~/.kedrogen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.kedrogen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(keyTemplatesDir, filepath.Join(Dir(), "templates"))

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Abbreviations returns the shorthand expansion table: the built-in defaults
// overlaid with any user-configured entries.
func Abbreviations() map[string]string {
	merged := make(map[string]string, len(defaultAbbreviations))
	for k, v := range defaultAbbreviations {
		merged[k] = v
	}
	for k, v := range viper.GetStringMapString(keyAbbreviations) {
		merged[k] = v
	}
	return merged
}

// TemplatesDir returns the scratch directory under which remote templates are
// cloned or extracted (~/.kedrogen/templates by default). The directory is
// created on demand.
func TemplatesDir() (string, error) {
	dir := viper.GetString(keyTemplatesDir)
	if dir == "" {
		dir = filepath.Join(Dir(), "templates")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating templates directory %s: %w", dir, err)
	}
	return dir, nil
}
