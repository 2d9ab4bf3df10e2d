package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// ChatMate specifics
	Gemini         GeminiConfig
	Backend        BackendConfig
	WhatsApp       WhatsAppConfig
	Scheduler      SchedulerConfig
	GoogleCalendar GoogleCalendarConfig
	Chat           ChatConfig
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

type GeminiConfig struct {
	APIKey   string
	Model    string
	Timezone string
}

// BackendConfig points at the task backend that owns the to-do list
// and owner prompts.
type BackendConfig struct {
	URL string
}

type WhatsAppConfig struct {
	BaseURL   string
	APIKey    string
	AccountID string
}

type SchedulerConfig struct {
	DBPath string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type ChatConfig struct {
	RateLimitPerMin   int
	PendingTTLMinutes int
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

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Timezone = viper.GetString("gemini.timezone")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini.api_key is required")
	}

	// Task backend
	cfg.Backend.URL = viper.GetString("backend.url")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.URL = backendURL
	}
	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("backend.url is required")
	}

	// WhatsApp (Unipile)
	cfg.WhatsApp.BaseURL = viper.GetString("whatsapp.base_url")
	cfg.WhatsApp.APIKey = viper.GetString("whatsapp.api_key")
	cfg.WhatsApp.AccountID = viper.GetString("whatsapp.account_id")
	if waKey := viper.GetString("whatsapp_api_key"); waKey != "" {
		cfg.WhatsApp.APIKey = waKey
	}

	// Scheduler
	cfg.Scheduler.DBPath = viper.GetString("scheduler.db_path")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Chat
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.PendingTTLMinutes = viper.GetInt("chat.pending_ttl_minutes")

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

	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.timezone", "UTC")
	viper.SetDefault("scheduler.db_path", "data/scheduler.db")
	viper.SetDefault("chat.rate_limit_per_min", 60)
	viper.SetDefault("chat.pending_ttl_minutes", 30)
}
