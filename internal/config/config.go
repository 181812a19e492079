package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/genai-course/internal/store"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "GENAI_COURSE"

var (
	ErrUnknownBackend   = errors.New("unknown storage backend")
	ErrMissingRedisURL  = errors.New("redis backend requires storage.redis_url")
	ErrBadReferenceLine = errors.New("nav.reference_line must be at least 1")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env     string  `mapstructure:"env"` // local, dev, production
	Storage Storage `mapstructure:"storage"`
	Log     Log     `mapstructure:"log"`
	Content Content `mapstructure:"content"`
	Nav     Nav     `mapstructure:"nav"`
	Chat    Chat    `mapstructure:"chat"`
}

// Storage selects and configures the progress backend.
type Storage struct {
	Backend  string `mapstructure:"backend"`   // sqlite, redis or memory
	Path     string `mapstructure:"path"`      // sqlite database file; empty uses the XDG data dir
	RedisURL string `mapstructure:"redis_url"` // redis://host:port/db
	Key      string `mapstructure:"key"`       // progress record key
}

// Log configures the zap logger.
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Content points at an optional external chapter content file.
type Content struct {
	Path string `mapstructure:"path"`
}

// Nav tunes the navigation panel.
type Nav struct {
	ReferenceLine int `mapstructure:"reference_line"` // viewport row used for active-section detection
}

// Chat tunes the scripted chat demo.
type Chat struct {
	ReplyDelay   time.Duration `mapstructure:"reply_delay"`
	WelcomeDelay time.Duration `mapstructure:"welcome_delay"`
}

// Load reads configuration from an optional .env file, an optional config
// file at path and GENAI_COURSE_* environment variables. An empty path
// searches ./config.yaml and $XDG_CONFIG_HOME/genai-course/config.yaml.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$XDG_CONFIG_HOME/genai-course")
		v.AddConfigPath("$HOME/.config/genai-course")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("storage.backend", string(store.BackendSQLite))
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.redis_url", "")
	v.SetDefault("storage.key", "genai_course_progress")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("content.path", "")
	v.SetDefault("nav.reference_line", 4)
	v.SetDefault("chat.reply_delay", "800ms")
	v.SetDefault("chat.welcome_delay", "500ms")
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch store.Backend(c.Storage.Backend) {
	case store.BackendSQLite, store.BackendMemory:
	case store.BackendRedis:
		if c.Storage.RedisURL == "" {
			return ErrMissingRedisURL
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}
	if c.Nav.ReferenceLine < 1 {
		return ErrBadReferenceLine
	}
	return nil
}

// StoreOptions maps the storage section onto store.Options.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		Backend:     store.Backend(c.Storage.Backend),
		Path:        c.Storage.Path,
		RedisURL:    c.Storage.RedisURL,
		RedisPrefix: "genai-course:",
	}
}
