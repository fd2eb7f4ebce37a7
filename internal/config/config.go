package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"kingdom/internal/core"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     App     `mapstructure:"app"`
	AI      AI      `mapstructure:"ai"`
	Trends  Trends  `mapstructure:"trends"`
	Store   Store   `mapstructure:"store"`
	Server  Server  `mapstructure:"server"`
	Logging Logging `mapstructure:"logging"`
}

// App holds general application configuration
type App struct {
	Debug   bool   `mapstructure:"debug"`
	Mode    string `mapstructure:"mode"`
	DataDir string `mapstructure:"data_dir"`
}

// AI holds the text-generation collaborator configuration
type AI struct {
	Provider string `mapstructure:"provider"` // openai, gemini, none
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Model    string `mapstructure:"model"`
	Timeout  string `mapstructure:"timeout"`
}

// Trends holds trend source configuration
type Trends struct {
	Source  string `mapstructure:"source"` // static, http, history
	URL     string `mapstructure:"url"`
	Token   string `mapstructure:"token"`
	Timeout string `mapstructure:"timeout"`
}

// Store holds hashtag history storage configuration
type Store struct {
	Path string `mapstructure:"path"`
}

// Server holds HTTP API configuration
type Server struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// Logging holds logging configuration
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var globalConfig *Config

// Load loads the configuration from the config file, .env and the environment
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".kingdom")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	bindEnvironmentVariables()

	viper.SetEnvPrefix("KINGDOM")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := postProcessConfig(config); err != nil {
		return nil, fmt.Errorf("error post-processing config: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.mode", string(core.ModeFaith))
	viper.SetDefault("app.data_dir", ".kingdom")

	viper.SetDefault("ai.provider", "openai")
	viper.SetDefault("ai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("ai.model", "gpt-4o-mini")
	viper.SetDefault("ai.timeout", "30s")

	viper.SetDefault("trends.source", "static")
	viper.SetDefault("trends.timeout", "10s")

	viper.SetDefault("store.path", "")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.cors_origins", []string{"*"})

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

// bindEnvironmentVariables sets up flexible environment variable binding
func bindEnvironmentVariables() {
	bindEnvKeys("ai.api_key", []string{
		"KINGDOM_AI_API_KEY",
		"AI_API_KEY",
		"OPENAI_API_KEY",
		"GEMINI_API_KEY",
	})

	bindEnvKeys("ai.base_url", []string{
		"KINGDOM_AI_BASE_URL",
		"AI_BASE_URL",
	})

	bindEnvKeys("trends.token", []string{
		"TRENDS_API_TOKEN",
	})

	bindEnvKeys("app.debug", []string{
		"DEBUG",
		"KINGDOM_DEBUG",
	})
}

// bindEnvKeys binds the first found environment variable to a viper key
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(viperKey, value)
			return
		}
	}
}

// postProcessConfig expands paths and validates durations
func postProcessConfig(config *Config) error {
	if config.App.DataDir != "" {
		config.App.DataDir = expandPath(config.App.DataDir)
	}
	if config.Store.Path == "" && config.App.DataDir != "" {
		config.Store.Path = filepath.Join(config.App.DataDir, "history.db")
	} else if config.Store.Path != "" {
		config.Store.Path = expandPath(config.Store.Path)
	}

	config.AI.Provider = strings.ToLower(strings.TrimSpace(config.AI.Provider))
	config.Trends.Source = strings.ToLower(strings.TrimSpace(config.Trends.Source))

	durations := map[string]string{
		"ai.timeout":     config.AI.Timeout,
		"trends.timeout": config.Trends.Timeout,
	}
	for key, duration := range durations {
		if duration != "" {
			if _, err := time.ParseDuration(duration); err != nil {
				return fmt.Errorf("invalid duration for %s: %s", key, duration)
			}
		}
	}

	return nil
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// validateConfig checks enumerations; a missing AI key is not an error because
// every AI-backed operation has a fallback.
func validateConfig(config *Config) error {
	var errors []string

	if _, err := core.ParseMode(config.App.Mode); err != nil {
		errors = append(errors, fmt.Sprintf("app.mode: %v", err))
	}

	switch config.AI.Provider {
	case "openai", "gemini", "none", "":
	default:
		errors = append(errors, fmt.Sprintf("Unknown AI provider: %s. Supported: openai, gemini, none", config.AI.Provider))
	}

	switch config.Trends.Source {
	case "static", "history", "":
	case "http":
		if config.Trends.URL == "" {
			errors = append(errors, "trends.url is required when trends.source is http")
		}
	default:
		errors = append(errors, fmt.Sprintf("Unknown trends source: %s. Supported: static, http, history", config.Trends.Source))
	}

	if config.Server.Port < 0 || config.Server.Port > 65535 {
		errors = append(errors, fmt.Sprintf("server.port out of range: %d", config.Server.Port))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Mode returns the configured default mode.
func (c *Config) Mode() core.Mode {
	mode, err := core.ParseMode(c.App.Mode)
	if err != nil {
		return core.ModeFaith
	}
	return mode
}

// AITimeout returns the parsed AI timeout, defaulting to 30s.
func (c *Config) AITimeout() time.Duration {
	return parseDurationOr(c.AI.Timeout, 30*time.Second)
}

// TrendsTimeout returns the parsed trend source timeout, defaulting to 10s.
func (c *Config) TrendsTimeout() time.Duration {
	return parseDurationOr(c.Trends.Timeout, 10*time.Second)
}

// Addr returns host:port for the HTTP server.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// HasAIKey reports whether an AI key is configured and is not a placeholder
func HasAIKey() bool {
	return isValidAPIKey(Get().AI.APIKey)
}

// isValidAPIKey checks if an API key is valid (not empty and not a placeholder)
func isValidAPIKey(apiKey string) bool {
	if apiKey == "" {
		return false
	}

	placeholders := []string{
		"your-api-key", "your-openai-key", "your-gemini-key", "YOUR_API_KEY", "PLACEHOLDER", "CHANGE_ME",
	}
	for _, placeholder := range placeholders {
		if apiKey == placeholder {
			return false
		}
	}

	return true
}

// Reset clears the global configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viper.Reset()
}
