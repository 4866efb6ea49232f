package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Concierge specifics
	OpenAI         OpenAIConfig
	Storage        StorageConfig
	SessionCache   SessionCacheConfig
	Chat           ChatConfig
	GoogleCalendar GoogleCalendarConfig
	Property       PropertyConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	APIURL string
}

// StorageConfig selects the session/catalog store. Driver is "sqlite" or
// "memory"; Path is the SQLite file for the sqlite driver.
type StorageConfig struct {
	Driver string
	Path   string
}

type SessionCacheConfig struct {
	Size int
	TTL  time.Duration
}

type ChatConfig struct {
	RateLimitPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// PropertyConfig identifies the apartment this deployment serves.
type PropertyConfig struct {
	Name     string
	Timezone string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenAI
	cfg.OpenAI.APIKey = expandEnvVar(viper.GetString("openai.api_key"))
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.APIURL = viper.GetString("openai.api_url")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("openai.api_key is required - set it in config.yaml or OPENAI_API_KEY")
	}

	// Storage
	cfg.Storage.Driver = viper.GetString("storage.driver")
	cfg.Storage.Path = viper.GetString("storage.path")
	if cfg.Storage.Driver != "sqlite" && cfg.Storage.Driver != "memory" {
		return nil, fmt.Errorf("storage.driver must be sqlite or memory, got %q", cfg.Storage.Driver)
	}

	// Session cache
	cfg.SessionCache.Size = viper.GetInt("session_cache.size")
	cfg.SessionCache.TTL = viper.GetDuration("session_cache.ttl")

	// Chat
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Property
	cfg.Property.Name = viper.GetString("property.name")
	cfg.Property.Timezone = viper.GetString("property.timezone")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("openai.model", "gpt-4-turbo")
	viper.SetDefault("storage.driver", "sqlite")
	viper.SetDefault("storage.path", "concierge.db")
	viper.SetDefault("session_cache.size", 512)
	viper.SetDefault("session_cache.ttl", "10m")
	viper.SetDefault("chat.rate_limit_per_min", 60)
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("property.name", "Mirador del Mar 3B")
	viper.SetDefault("property.timezone", "Europe/Madrid")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
