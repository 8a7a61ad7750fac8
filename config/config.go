package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Voice task management specifics
	Interpreter InterpreterConfig
	Store       StoreConfig
	RateLimit   RateLimitConfig
	WebSocket   WebSocketConfig
	Reminder    ReminderConfig
	Metrics     MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// InterpreterConfig configures how utterances are read. Thresholds are fixed
// by the command language and are not configurable.
type InterpreterConfig struct {
	Timezone          string
	ClassifyCacheSize int
}

type StoreConfig struct {
	Driver string // memory, sqlite or postgres
	DSN    string // file path for sqlite, connection URL for postgres
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type WebSocketConfig struct {
	AllowAnyOrigin bool
}

type ReminderConfig struct {
	Enabled  bool
	Window   time.Duration
	Interval time.Duration
}

type MetricsConfig struct {
	Namespace string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/voicetask/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/voicetask/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := build()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Watch calls onChange with the reloaded configuration whenever the config
// file changes. Only settings that are safe to change at runtime should be
// applied by the callback. A reload that fails validation is passed to onSkip
// instead.
func Watch(onChange func(*Config), onSkip func(error)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg := build()
		if err := cfg.validate(); err != nil {
			onSkip(err)
			return
		}
		onChange(cfg)
	})
	viper.WatchConfig()
}

func build() *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Interpreter
	cfg.Interpreter.Timezone = viper.GetString("interpreter.timezone")
	cfg.Interpreter.ClassifyCacheSize = viper.GetInt("interpreter.classify_cache_size")

	// Store
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(viper.GetString("store.driver")))
	cfg.Store.DSN = expandEnvVar(viper.GetString("store.dsn"))

	// Transports
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.WebSocket.AllowAnyOrigin = viper.GetBool("websocket.allow_any_origin")

	// Reminders
	cfg.Reminder.Enabled = viper.GetBool("reminder.enabled")
	cfg.Reminder.Window = viper.GetDuration("reminder.window")
	cfg.Reminder.Interval = viper.GetDuration("reminder.interval")

	cfg.Metrics.Namespace = viper.GetString("metrics.namespace")

	return cfg
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("interpreter.timezone", "UTC")
	viper.SetDefault("interpreter.classify_cache_size", 1024)

	viper.SetDefault("store.driver", StoreMemory)
	viper.SetDefault("store.dsn", "")

	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("websocket.allow_any_origin", false)

	// The original reminder checked every 30s for tasks due within a minute.
	viper.SetDefault("reminder.enabled", true)
	viper.SetDefault("reminder.window", "60s")
	viper.SetDefault("reminder.interval", "30s")

	viper.SetDefault("metrics.namespace", "voicetask")
}

func (cfg *Config) validate() error {
	switch cfg.Store.Driver {
	case StoreMemory:
	case StoreSQLite, StorePostgres:
		if cfg.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for the %s driver", cfg.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store.driver %q (want memory, sqlite or postgres)", cfg.Store.Driver)
	}

	if cfg.Interpreter.ClassifyCacheSize < 0 {
		return fmt.Errorf("interpreter.classify_cache_size must not be negative")
	}
	if cfg.Reminder.Enabled && (cfg.Reminder.Window <= 0 || cfg.Reminder.Interval <= 0) {
		return fmt.Errorf("reminder.window and reminder.interval must be positive")
	}
	return nil
}

// expandEnvVar expands values written as ${VAR_NAME}, so secrets such as
// database URLs can stay out of the config file.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
