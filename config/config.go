package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultTriggerURL is the Maestro workflow trigger the demo account was set up with
const DefaultTriggerURL = "https://apps-d.docusign.com/api/maestro/v1/accounts/2bb4891f-4723-432f-8efa-a53ddd864fc8/workflow_definitions/05313dfd-5f88-4501-a082-e3c4316d0a33/trigger?hash=ZmU0YWViYjE3YjVlMWM0YjUxYzYzYjU3ZTI2NmQxNmI3YmRjODU5Y2Q5YjA1NmUxZmIwNWJjOGI0NDZmYzgzMzQ2ZWQ4NDc5Y2NjMDRkY2ZkNTE0YTM5Mzc0ZWFmYjk5ZjNjNWVjOTkyNWMxNjhlMDljMzAyYWFmMmExYzIwNzU0YzgxODZmMTZiMjI4OTdiYWRkYjI3MTc0NDNjNjU5ZDgyYWU2MDNmY2ZkY2EyYWFjZTRkODNhZmE2ZjhhZjUyN2Q1NDc0MGE2ZTBmNTRjOWY2YjFlNzQzMzVkZDdmMjU2ZmMyNmE1ZjY4ODBjOTYzMjBhYjBkMzZmY2E3ZjA2Yg=="

// Config is the root configuration of the service
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Store    StoreConfig    `mapstructure:"store"`
	Workflow WorkflowConfig `mapstructure:"workflow"`
}

// ServerConfig describes the HTTP server
type ServerConfig struct {
	Port               int           `mapstructure:"port"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
	RateLimitPerSecond float64       `mapstructure:"rate_limit_per_second"` // 0 disables
	RateLimitBurst     int           `mapstructure:"rate_limit_burst"`
}

// LoggerConfig configures the zap logger
type LoggerConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// StoreConfig configures the in-memory record store
type StoreConfig struct {
	Name         string `mapstructure:"name"`
	SeedDemoData bool   `mapstructure:"seed_demo_data"`
}

// WorkflowConfig configures the external workflow trigger
type WorkflowConfig struct {
	TriggerURL         string        `mapstructure:"trigger_url"`
	SubmitterEmail     string        `mapstructure:"submitter_email"`
	Timeout            time.Duration `mapstructure:"timeout"`
	BreakerMaxFailures uint32        `mapstructure:"breaker_max_failures"`
	BreakerTimeout     time.Duration `mapstructure:"breaker_timeout"`

	// Initial credentials. At runtime they live in a Credentials value.
	AccountID   string `mapstructure:"account_id"`
	WorkflowID  string `mapstructure:"workflow_id"`
	AccessToken string `mapstructure:"access_token"`
}

// Load reads .env, config.yaml and environment variables, in increasing precedence
func Load() (*Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	// SERVER_PORT=9000 overrides server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := bindCredentialEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that would otherwise fail later at startup
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.RateLimitPerSecond < 0 {
		return fmt.Errorf("server.rate_limit_per_second must not be negative")
	}
	if c.Store.Name == "" {
		return fmt.Errorf("store.name is required")
	}
	if c.Workflow.TriggerURL == "" {
		return fmt.Errorf("workflow.trigger_url is required")
	}
	if c.Workflow.Timeout <= 0 {
		return fmt.Errorf("workflow.timeout must be positive")
	}
	return nil
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.rate_limit_per_second", 5)
	v.SetDefault("server.rate_limit_burst", 10)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("store.name", "permits")
	v.SetDefault("store.seed_demo_data", true)
	v.SetDefault("workflow.trigger_url", DefaultTriggerURL)
	v.SetDefault("workflow.submitter_email", "permits@example.gov")
	v.SetDefault("workflow.timeout", 5*time.Second)
	v.SetDefault("workflow.breaker_max_failures", 0)
	v.SetDefault("workflow.breaker_timeout", 30*time.Second)
	v.SetDefault("workflow.account_id", "")
	v.SetDefault("workflow.workflow_id", "")
	v.SetDefault("workflow.access_token", "")
}

// bindCredentialEnv maps the DocuSign variables onto the workflow keys
func bindCredentialEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"workflow.account_id":   "DOCUSIGN_ACCOUNT_ID",
		"workflow.workflow_id":  "DOCUSIGN_WORKFLOW_ID",
		"workflow.access_token": "DOCUSIGN_ACCESS_TOKEN",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}
	return nil
}
