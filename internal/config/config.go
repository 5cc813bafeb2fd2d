// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"org-commit-harvester/internal/model"
)

// DefaultOrganization is the organization harvested when ORG_NAME is unset.
const DefaultOrganization = "Data-Acquisition"

// Config holds all configuration for the application.
type Config struct {
	LogLevel            string `mapstructure:"LOG_LEVEL"`
	GithubToken         string `mapstructure:"GITHUB_TOKEN"`
	GithubAPIURL        string `mapstructure:"GITHUB_API_URL"`
	GithubRateLimitWait bool   `mapstructure:"GITHUB_RATE_LIMIT_WAIT"`
	OrgName             string `mapstructure:"ORG_NAME"`
	IncrementalSync     bool   `mapstructure:"INCREMENTAL_SYNC"`
	DBURL               string `mapstructure:"DB_URL"`
	DBHost              string `mapstructure:"DB_HOST"`
	DBPort              int    `mapstructure:"DB_PORT"`
	DBUser              string `mapstructure:"DB_USER"`
	DBPassword          string `mapstructure:"DB_PASSWORD"`
	DBName              string `mapstructure:"DB_NAME"`
	DBSSLMode           string `mapstructure:"DB_SSLMODE"`
}

// flagKeys maps CLI flag names onto configuration keys.
var flagKeys = map[string]string{
	"org":         "ORG_NAME",
	"incremental": "INCREMENTAL_SYNC",
	"log-level":   "LOG_LEVEL",
}

// LoadConfig reads configuration from a .env file and/or environment variables.
// Flags present in flags override both when set on the command line.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Every key needs a default so Unmarshal sees values that only exist in the environment.
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GITHUB_TOKEN", "")
	v.SetDefault("GITHUB_API_URL", "")
	v.SetDefault("GITHUB_RATE_LIMIT_WAIT", false)
	v.SetDefault("ORG_NAME", DefaultOrganization)
	v.SetDefault("INCREMENTAL_SYNC", false)
	v.SetDefault("DB_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "")
	v.SetDefault("DB_SSLMODE", "disable")

	// Load from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if file not found

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.OrgName == "" {
		return errors.New("ORG_NAME must not be empty")
	}
	if c.DBURL != "" {
		return nil
	}
	if c.DBUser == "" || c.DBName == "" {
		return errors.New("either DB_URL or DB_USER and DB_NAME must be set")
	}
	if c.DBPort <= 0 || c.DBPort > 65535 {
		return fmt.Errorf("DB_PORT %d is out of range", c.DBPort)
	}
	return nil
}

// RequireGithubToken fails when no token is configured. Only commands that
// talk to GitHub call it.
func (c *Config) RequireGithubToken() error {
	if c.GithubToken == "" {
		return errors.New("GITHUB_TOKEN is a required configuration field")
	}
	return nil
}

// DatabaseURL returns DB_URL when set, otherwise a postgres:// URL assembled
// from the DB_* parts.
func (c *Config) DatabaseURL() string {
	if c.DBURL != "" {
		return c.DBURL
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// SyncMode maps the incremental toggle to the run's sync mode.
func (c *Config) SyncMode(now time.Time) model.SyncMode {
	if c.IncrementalSync {
		return model.IncrementalSync(now)
	}
	return model.FullSync()
}
