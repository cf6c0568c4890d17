package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the service configuration
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Title    string `mapstructure:"title"`
	Version  string `mapstructure:"version"`
	DocsPath string `mapstructure:"docs_path"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig controls cross-origin access. The default allows every origin,
// which is not suitable for production deployments.
type CORSConfig struct {
	AllowOrigins []string      `mapstructure:"allow_origins"`
	MaxAge       time.Duration `mapstructure:"max_age"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "sales-analytics-api")
	v.SetDefault("app.title", "Sales Analytics API")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.docs_path", "/docs")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", gin.ReleaseMode)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.max_age", 12*time.Hour)
}

// loadConfig reads configuration from defaults, an optional config file,
// an optional .env file and the environment, in increasing precedence.
// An empty configPath searches ./configs and the working directory.
func loadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PORT is what most hosting platforms inject
	if err := v.BindEnv("server.port", "PORT", "SERVER_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port must not be empty")
	}
	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("server.mode %q is not one of debug, release, test", c.Server.Mode)
	}
	if len(c.CORS.AllowOrigins) == 0 {
		return errors.New("cors.allow_origins must list at least one origin")
	}
	if c.App.Name == "" {
		return errors.New("app.name must not be empty")
	}
	return nil
}

// addr returns the listen address for the HTTP server
func (c *Config) addr() string {
	return ":" + c.Server.Port
}
