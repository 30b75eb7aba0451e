// config.go: loads and holds the service configuration
package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Settings contains all runtime configuration for the fraud workflow service.
type Settings struct {
	Debug bool // true to enable debug mode

	// Runtime values, not stored in config file
	Version   string `yaml:"-"` // Version from build
	BuildDate string `yaml:"-"` // Build date from build

	Main struct {
		Name string    // name of this fraudflow node, used to identify the audit source
		Log  LogConfig // logging configuration
	}

	Bank struct {
		Name string // bank name read back to callers by the voice layer
	}

	WebServer struct {
		Debug   bool      // true to enable debug mode
		Enabled bool      // true to enable the HTTP API server
		Port    string    // port for the HTTP API server
		Log     LogConfig // logging configuration for the HTTP API server
	}

	Workflow struct {
		SessionTTL     int  // conversation session lifetime in minutes
		SeedDemoCases  bool // true to seed the demo dataset when the table is empty
		MetricsEnabled bool // true to expose prometheus metrics at /metrics
	}

	Output struct {
		SQLite struct {
			Enabled bool   // true to enable sqlite storage
			Path    string // path to sqlite database
		}

		MySQL struct {
			Enabled  bool   // true to enable mysql storage
			Username string // username for mysql database
			Password string // password for mysql database
			Database string // database name for mysql database
			Host     string // host for mysql database
			Port     string // port for mysql database
		}
	}
}

// LogConfig defines the configuration for a log file
type LogConfig struct {
	Enabled bool   // true to enable this log
	Path    string // Path to the log file
}

var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file and environment variables into a new
// Settings instance and stores it as the package-level instance.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper initializes viper with default values and reads the configuration file.
func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	// Environment variables override file values, FRAUDFLOW_OUTPUT_SQLITE_PATH etc.
	viper.SetEnvPrefix("fraudflow")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values for each configuration parameter
	// function defined in defaults.go
	setDefaultConfig()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, run on defaults
			return nil
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// GetDefaultConfigPaths returns the directories searched for config.yaml,
// working directory first, then the user config directory.
func GetDefaultConfigPaths() ([]string, error) {
	paths := []string{"."}

	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "fraudflow"))
	}

	return paths, nil
}

// GetSettings returns the current settings instance
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// Setting returns the current settings, loading them on first use.
func Setting() *Settings {
	settingsMutex.RLock()
	loaded := settingsInstance != nil
	settingsMutex.RUnlock()

	if !loaded {
		if _, err := Load(); err != nil {
			return nil
		}
	}
	return GetSettings()
}
