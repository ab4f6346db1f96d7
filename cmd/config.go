package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/logging"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort      = "8080"
	defaultDBSslMode     = "disable"
	defaultGraphCacheTTL = 5 * time.Minute
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr enables the graph cache when set.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	GraphCacheTTL time.Duration

	RoutingOverrideOrigin string
	AuditSchedule         string
	LogLevel              string
}

// LoadConfig loads envFile into the process environment and reads the configuration from it.
// Variables already set in the environment win over the file. A missing file is ignored.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from getenv, applying defaults for optional keys.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:              valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:                getenv("DB_HOST"),
		DBPort:                getenv("DB_PORT"),
		DBUser:                getenv("DB_USER"),
		DBPassword:            getenv("DB_PASSWORD"),
		DBName:                getenv("DB_NAME"),
		DBSslMode:             valueOr(getenv("DB_SSLMODE"), defaultDBSslMode),
		RedisAddr:             getenv("REDIS_ADDR"),
		RedisPassword:         getenv("REDIS_PASSWORD"),
		GraphCacheTTL:         defaultGraphCacheTTL,
		RoutingOverrideOrigin: getenv("ROUTING_OVERRIDE_ORIGIN"),
		AuditSchedule:         getenv("AUDIT_SCHEDULE"),
		LogLevel:              getenv("LOG_LEVEL"),
	}

	var parseErrs []error
	if raw := getenv("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil || db < 0 {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("REDIS_DB",
				fmt.Errorf("%q is not a database number", raw)))
		}
		cfg.RedisDB = db
	}
	if raw := getenv("GRAPH_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("GRAPH_CACHE_TTL",
				fmt.Errorf("%q is not a positive duration", raw)))
		}
		cfg.GraphCacheTTL = ttl
	}

	return cfg, errors.Join(parseErrs...)
}

// Validate reports every missing required key and every unusable value.
func (c Config) Validate() error {
	var problems []error

	required := []struct {
		key   string
		value string
	}{
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(r.key))
		}
	}

	if _, err := services.ParseOriginKey(c.RoutingOverrideOrigin); err != nil {
		problems = append(problems, fmt.Errorf("ROUTING_OVERRIDE_ORIGIN: %w", err))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}

	return errors.Join(problems...)
}

// DSN is the PostgreSQL connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
