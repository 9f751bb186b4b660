package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Assessment AssessmentConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type AssessmentConfig struct {
	// Cooldown is the minimum interval between repeat assessments of
	// the same skill. Required; the prototype and production paths
	// disagreed on an implicit value, so there is no default.
	Cooldown time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optInt := func(key string) int {
		raw := opt(key)
		if raw == "" {
			return 0
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return 0
		}
		return v
	}
	reqHours := func(key string) time.Duration {
		raw := req(key)
		if raw == "" {
			return 0
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			invalid = append(invalid, key)
			return 0
		}
		return time.Duration(v) * time.Hour
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        time.Duration(optInt("DB_CONNECT_TIMEOUT_SECONDS")) * time.Second,
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS")),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS")),
		PoolMaxConnLifetime:   time.Duration(optInt("DB_POOL_MAX_CONN_LIFETIME_SECONDS")) * time.Second,
		PoolMaxConnIdleTime:   time.Duration(optInt("DB_POOL_MAX_CONN_IDLE_SECONDS")) * time.Second,
		PoolHealthCheckPeriod: time.Duration(optInt("DB_POOL_HEALTH_CHECK_SECONDS")) * time.Second,
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  time.Duration(intDefault(optInt("JWT_ACCESS_TTL_MINUTES"), 15)) * time.Minute,
		RefreshExpiresIn: time.Duration(intDefault(optInt("JWT_REFRESH_TTL_MINUTES"), 7*24*60)) * time.Minute,
	}

	cfg.Assessment = AssessmentConfig{
		Cooldown: reqHours("ASSESSMENT_COOLDOWN_HOURS"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func intDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
