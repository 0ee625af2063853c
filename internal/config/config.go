package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/topix-labs/topix/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyDefaultChoice = "topic.default_choice"
	KeyLocale        = "topic.locale"
	KeyDirs          = "topic.dirs"
	KeyLogLevel      = "log.level"
)

// defaults are applied before the config file and environment.
var defaults = map[string]any{
	KeyDefaultChoice: 5,
	KeyLocale:        "und",
	KeyDirs:          []string{},
	KeyLogLevel:      "warn",
}

// Dir returns the path to the config directory (~/.topix/).
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.topix/config.yaml).
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
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetInt returns an integer config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetStringSlice returns a list value. Comma-separated strings (as set from
// the command line or the environment) are split and trimmed.
func GetStringSlice(key string) []string {
	var out []string
	for _, item := range viper.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// Keys returns the known keys plus any key present in the config file, sorted.
func Keys() []string {
	seen := make(map[string]bool)
	for k := range defaults {
		seen[k] = true
	}
	for _, k := range viper.AllKeys() {
		seen[k] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
