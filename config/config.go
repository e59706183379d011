package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"sidenav/log"
)

const (
	ConfigFileName = "config.json"
	// EnvPrefix prefixes environment overrides, e.g. SIDENAV_LEFT_PAN_BOUND.
	EnvPrefix = "SIDENAV"

	// AutoBound asks the app to derive a pan bound from the terminal size.
	AutoBound = -1

	defaultNavigationLayout = "nav"
	defaultMainLayout       = "main"
	layoutsDirName          = "layouts"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".sidenav"), nil
}

// Config represents the application configuration
type Config struct {
	// LeftPanBound is the navigation strip left visible while the main panel
	// rests. AutoBound derives it from the terminal width.
	LeftPanBound int `json:"left_pan_bound" mapstructure:"left_pan_bound"`
	// RightPanBound is the main strip left visible while the navigation panel
	// is open. AutoBound derives it from the navigation list width.
	RightPanBound int `json:"right_pan_bound" mapstructure:"right_pan_bound"`
	// DragThreshold is how many cells a press may travel before it is a drag.
	DragThreshold int `json:"drag_threshold" mapstructure:"drag_threshold"`
	// NavigationLayout and MainLayout name the layouts inflated into the panels.
	NavigationLayout string `json:"navigation_layout" mapstructure:"navigation_layout"`
	MainLayout       string `json:"main_layout" mapstructure:"main_layout"`
	// ResourceDir is searched for layout files before the built-in ones.
	// Empty means the layouts directory inside the config directory.
	ResourceDir string `json:"resource_dir" mapstructure:"resource_dir"`
	// RememberState restores the open panel and loaded site on start.
	RememberState bool `json:"remember_state" mapstructure:"remember_state"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LeftPanBound:     AutoBound,
		RightPanBound:    AutoBound,
		DragThreshold:    1,
		NavigationLayout: defaultNavigationLayout,
		MainLayout:       defaultMainLayout,
		ResourceDir:      "",
		RememberState:    true,
	}
}

// GetResourceDir returns the directory layouts are read from.
func (c *Config) GetResourceDir() (string, error) {
	if c.ResourceDir != "" {
		return c.ResourceDir, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, layoutsDirName), nil
}

// newViper returns a viper instance carrying defaults and env overrides.
func newViper() *viper.Viper {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("left_pan_bound", def.LeftPanBound)
	v.SetDefault("right_pan_bound", def.RightPanBound)
	v.SetDefault("drag_threshold", def.DragThreshold)
	v.SetDefault("navigation_layout", def.NavigationLayout)
	v.SetDefault("main_layout", def.MainLayout)
	v.SetDefault("resource_dir", def.ResourceDir)
	v.SetDefault("remember_state", def.RememberState)

	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the config file and SIDENAV_* environment overrides. It
// never fails: problems are logged and defaults are used instead.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		// Create and save default config if file doesn't exist
		if saveErr := saveConfig(DefaultConfig()); saveErr != nil {
			log.WarningLog.Printf("failed to save default config: %v", saveErr)
		}
	}

	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.WarningLog.Printf("config file %s missing, using defaults", configPath)
		} else {
			backupCorruptConfig(configPath, err)
		}
		v = newViper()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		log.ErrorLog.Printf("failed to decode config: %v", err)
		return DefaultConfig()
	}
	return &config
}

func backupCorruptConfig(configPath string, parseErr error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		log.WarningLog.Printf("failed to read config file: %v", err)
		return
	}

	preview := string(data)
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, parseErr, preview)

	backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
	if err := os.WriteFile(backupPath, data, 0644); err == nil {
		log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
	}
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
