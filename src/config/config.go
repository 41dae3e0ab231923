package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Databases DatabasesConfig `mapstructure:"databases"`
	AWS       AWSConfig       `mapstructure:"aws"`
	Render    RenderConfig    `mapstructure:"render"`
}

type ServiceConfig struct {
	Name     string `mapstructure:"name"`
	Version  string `mapstructure:"version"`
	Port     string `mapstructure:"port"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"logLevel"`
	LogFile  string `mapstructure:"logFile"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

type DashboardConfig struct {
	Source          string        `mapstructure:"source"`
	Currency        string        `mapstructure:"currency"`
	CacheTTL        time.Duration `mapstructure:"cacheTTL"`
	RefreshDebounce time.Duration `mapstructure:"refreshDebounce"`
	RefreshCron     string        `mapstructure:"refreshCron"`
	ActivityLimit   int           `mapstructure:"activityLimit"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
	TLS      bool   `mapstructure:"tls"`
}

type AWSConfig struct {
	Region     string `mapstructure:"region"`
	DBSecretID string `mapstructure:"dbSecretId"`
}

type RenderConfig struct {
	WkhtmltopdfPath string `mapstructure:"wkhtmltopdfPath"`
}

// SecretFetcher reads a secret string by id.
type SecretFetcher interface {
	GetSecretValue(ctx context.Context, secretID string) (string, error)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.name", "fingenius-api")
	v.SetDefault("service.version", "1.0.0")
	v.SetDefault("service.port", "8000")
	v.SetDefault("service.debug", false)
	v.SetDefault("service.logLevel", "info")
	v.SetDefault("service.logFile", "")

	v.SetDefault("cors.allowedOrigins", []string{"http://localhost:3000"})

	v.SetDefault("dashboard.source", "mock")
	v.SetDefault("dashboard.currency", "USD")
	v.SetDefault("dashboard.cacheTTL", 5*time.Minute)
	v.SetDefault("dashboard.refreshDebounce", 2*time.Second)
	v.SetDefault("dashboard.refreshCron", "")
	v.SetDefault("dashboard.activityLimit", 5)

	v.SetDefault("databases.sql.host", "localhost")
	v.SetDefault("databases.sql.port", "5432")
	v.SetDefault("databases.sql.username", "")
	v.SetDefault("databases.sql.password", "")
	v.SetDefault("databases.sql.database", "fingenius")
	v.SetDefault("databases.sql.connection_string", "")

	v.SetDefault("databases.redis.enabled", false)
	v.SetDefault("databases.redis.host", "localhost")
	v.SetDefault("databases.redis.port", "6379")
	v.SetDefault("databases.redis.username", "")
	v.SetDefault("databases.redis.password", "")
	v.SetDefault("databases.redis.database", 0)
	v.SetDefault("databases.redis.tls", false)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.dbSecretId", "")

	v.SetDefault("render.wkhtmltopdfPath", "")
}

// LoadConfig reads appsettings.yaml from path, overlays appsettings.<env>.yaml
// when env is set, then applies FINGENIUS_* environment variables. A .env
// file in the working directory is loaded first if present.
func LoadConfig(path string, env string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("appsettings")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if env != "" {
		v.SetConfigName("appsettings." + strings.ToUpper(env))
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	v.SetEnvPrefix("FINGENIUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.Service.Port == "" {
		errs = append(errs, errors.New("service.port is required"))
	}
	switch c.Dashboard.Source {
	case "mock", "postgres":
	default:
		errs = append(errs, fmt.Errorf("dashboard.source must be mock or postgres, got %q", c.Dashboard.Source))
	}
	c.Dashboard.Currency = strings.ToUpper(c.Dashboard.Currency)
	if money.GetCurrency(c.Dashboard.Currency) == nil {
		errs = append(errs, fmt.Errorf("dashboard.currency %q is not an ISO 4217 code", c.Dashboard.Currency))
	}
	if c.Dashboard.ActivityLimit <= 0 {
		errs = append(errs, errors.New("dashboard.activityLimit must be positive"))
	}
	if c.Dashboard.RefreshDebounce < 0 || c.Dashboard.CacheTTL < 0 {
		errs = append(errs, errors.New("dashboard durations must not be negative"))
	}
	return errors.Join(errs...)
}

// DSN builds the Postgres connection string unless one is configured.
func (c SQLConfig) DSN() string {
	if c.ConnectionString != "" {
		return c.ConnectionString
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host,
		c.Username,
		c.Password,
		c.Database,
		c.Port)
}

// dbSecret is the JSON shape RDS-managed secrets use.
type dbSecret struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	Host     string          `json:"host"`
	Port     json.RawMessage `json:"port"`
	DBName   string          `json:"dbname"`
}

// ResolveSecrets fills the SQL settings from the AWS secret named by
// aws.dbSecretId, when set. A JSON secret overrides the individual
// fields; anything else is taken as a connection string.
func (c *Config) ResolveSecrets(ctx context.Context, fetcher SecretFetcher) error {
	if c.AWS.DBSecretID == "" {
		return nil
	}
	secret, err := fetcher.GetSecretValue(ctx, c.AWS.DBSecretID)
	if err != nil {
		return fmt.Errorf("failed to read secret %s: %w", c.AWS.DBSecretID, err)
	}
	secret = strings.TrimSpace(secret)
	if !strings.HasPrefix(secret, "{") {
		c.Databases.SQL.ConnectionString = secret
		return nil
	}

	var parsed dbSecret
	if err := json.Unmarshal([]byte(secret), &parsed); err != nil {
		return fmt.Errorf("failed to parse secret %s: %w", c.AWS.DBSecretID, err)
	}
	sql := &c.Databases.SQL
	sql.ConnectionString = ""
	overrideIfSet(&sql.Username, parsed.Username)
	overrideIfSet(&sql.Password, parsed.Password)
	overrideIfSet(&sql.Host, parsed.Host)
	overrideIfSet(&sql.Database, parsed.DBName)
	if len(parsed.Port) > 0 {
		// RDS stores the port as a number, hand-written secrets often as a string
		port := strings.Trim(string(parsed.Port), `"`)
		if _, err := strconv.Atoi(port); err != nil {
			return fmt.Errorf("secret %s has invalid port %s", c.AWS.DBSecretID, parsed.Port)
		}
		sql.Port = port
	}
	return nil
}

func overrideIfSet(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
