package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// APIKeyEnv overrides the api_key setting when set
const APIKeyEnv = "API_KEY"

// Config represents the application configuration
type Config struct {
	APIURL         string `toml:"api_url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	TemplatePath   string `toml:"template_path"`
	OutputPath     string `toml:"output_path"`
	FilterKey      string `toml:"filter_key"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		APIURL:         "https://api.api-ninjas.com",
		TimeoutSeconds: 10,
		TemplatePath:   "animals_template.html",
		OutputPath:     "animals.html",
		FilterKey:      "skin_type",
	}
}

// Timeout returns the HTTP client timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "bestiary", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err := createDefaultConfig(configPath)
		if err != nil {
			return nil, err
		}
		applyEnv(config)
		return config, nil
	}

	return LoadFile(configPath)
}

// LoadFile loads a specific config file. Unset fields keep their defaults.
func LoadFile(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	applyEnv(config)
	return config, nil
}

func applyEnv(config *Config) {
	if key := os.Getenv(APIKeyEnv); key != "" {
		config.APIKey = key
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := Default()

	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %v", err)
	}

	return config, nil
}
