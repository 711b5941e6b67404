package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/expressgen-labs/expressgen/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyParentDir = "parent_dir"
	KeyNpmBin    = "npm_bin"
	KeyNpxBin    = "npx_bin"
	KeyPort      = "port"
	KeyDBURI     = "db_uri"
	KeyClientDir = "client_dir"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Keys lists every recognized key in display order.
var Keys = []string{
	KeyParentDir, KeyNpmBin, KeyNpxBin, KeyPort,
	KeyDBURI, KeyClientDir, KeyLogLevel, KeyLogFormat,
}

// Settings is the resolved configuration for a scaffold run.
type Settings struct {
	ParentDir string `mapstructure:"parent_dir"`
	NpmBin    string `mapstructure:"npm_bin"`
	NpxBin    string `mapstructure:"npx_bin"`
	Port      int    `mapstructure:"port"`
	// DBURI may contain "{{name}}", replaced by the project name.
	DBURI     string `mapstructure:"db_uri"`
	ClientDir string `mapstructure:"client_dir"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Dir returns the path to the config directory (~/.expressgen/).
func Dir() string {
	if override := os.Getenv(branding.EnvVar("HOME")); override != "" {
		return override
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.expressgen/config.yaml).
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

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyParentDir, ".")
	v.SetDefault(KeyNpmBin, "npm")
	v.SetDefault(KeyNpxBin, "npx")
	v.SetDefault(KeyPort, 8080)
	v.SetDefault(KeyDBURI, "mongodb://localhost:27017/{{name}}")
	v.SetDefault(KeyClientDir, "client")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	setDefaults(viper.GetViper())
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Resolve unmarshals the loaded configuration into Settings.
// Load must have been called first.
func Resolve() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := checkPort(s.Port); err != nil {
		return nil, err
	}
	return &s, nil
}

func checkPort(port int) error {
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid %s %d: must be between 1 and 65535", KeyPort, port)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnown reports whether key is a recognized configuration key.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if key == KeyPort {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: must be a number", KeyPort, value)
		}
		if err := checkPort(port); err != nil {
			return err
		}
	}
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
