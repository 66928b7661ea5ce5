package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"CashView/pkg/util"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// AccountConfig describes one configured brokerage sub-account. Credentials
// are referenced by environment variable name and resolved at load time; an
// absent variable resolves to an empty string, not a startup failure.
type AccountConfig struct {
	Person    string `yaml:"person" validate:"required"`
	Account   string `yaml:"account" validate:"required"`
	Currency  string `yaml:"currency" default:"GBP" validate:"oneof=GBP USD"`
	KeyIDEnv  string `yaml:"key_id_env" validate:"required"`
	SecretEnv string `yaml:"secret_env" validate:"required"`

	// Resolved from the environment, never read from YAML.
	KeyID  string `yaml:"-"`
	Secret string `yaml:"-"`
}

type Config struct {
	Environment string `yaml:"environment" default:"production"`
	Server      struct {
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"60s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Web struct {
		Dir string `yaml:"dir" default:"web"`
	} `yaml:"web"`
	Trading212 struct {
		BaseURL string        `yaml:"base_url" default:"https://live.trading212.com"`
		Timeout time.Duration `yaml:"timeout" default:"20s"`
	} `yaml:"trading212"`
	FX struct {
		BaseURL       string        `yaml:"base_url" default:"https://api.frankfurter.app"`
		Timeout       time.Duration `yaml:"timeout" default:"5s"`
		LookbackDays  int           `yaml:"lookback_days" default:"7" validate:"min=1"`
		ReportBase    string        `yaml:"report_base" default:"GBP"`
		ReportTargets []string      `yaml:"report_targets" default:"[\"USD\",\"HKD\"]"`
	} `yaml:"fx"`
	Accounts []AccountConfig   `yaml:"accounts" validate:"min=1,dive"`
	Aliases  map[string]string `yaml:"aliases"`
	Logging  struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"logging"`
}

var validate = validator.New()

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML, overrides with environment variables
// and resolves account credentials.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("T212_BASE_URL"); v != "" {
		c.Trading212.BaseURL = v
	}
	if v := os.Getenv("FX_BASE_URL"); v != "" {
		c.FX.BaseURL = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}

	c.ResolveCredentials()

	return c, nil
}

// ResolveCredentials fills every account's key pair from the environment.
// Missing variables yield empty strings; the upstream rejects those requests
// and the failure surfaces on the account entry instead.
func (c *Config) ResolveCredentials() {
	for i := range c.Accounts {
		c.Accounts[i].KeyID = os.Getenv(c.Accounts[i].KeyIDEnv)
		c.Accounts[i].Secret = os.Getenv(c.Accounts[i].SecretEnv)
	}
}

// Alias resolves the reporting group for a person, identity if unaliased.
func (c *Config) Alias(person string) string {
	if a, ok := c.Aliases[person]; ok && a != "" {
		return a
	}
	return person
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Accounts))
	for _, a := range c.Accounts {
		key := a.Person + "/" + a.Account
		if seen[key] {
			return fmt.Errorf("duplicate account %q", key)
		}
		seen[key] = true
	}
	for from, to := range c.Aliases {
		if strings.TrimSpace(to) == "" {
			return fmt.Errorf("alias for %q is empty", from)
		}
	}
	return nil
}
