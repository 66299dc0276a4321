package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress              string
	DatabaseURI             string
	TokenSecret             string
	TokenStrategy           string
	TokenTTL                time.Duration
	BcryptCost              int
	RedisURL                string
	CORSAllowedOrigins      []string
	ShutdownTimeout         time.Duration
	RevocationSweepInterval time.Duration
	LogLevel                string
}

const (
	defaultRunAddress              = ":5000"
	defaultTokenStrategy           = "jwt"
	defaultTokenTTL                = 24 * time.Hour
	defaultBcryptCost              = 10
	defaultShutdownTimeout         = 10 * time.Second
	defaultRevocationSweepInterval = time.Minute
	defaultLogLevel                = "info"
	defaultCORSOrigins             = "*"
)

// Load reads an optional .env file and parses configuration from flags and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:              getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:             getString(lookup, "DATABASE_URI", ""),
		TokenSecret:             getString(lookup, "TOKEN_SECRET", ""),
		TokenStrategy:           getString(lookup, "TOKEN_STRATEGY", defaultTokenStrategy),
		TokenTTL:                getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		BcryptCost:              getInt(lookup, "BCRYPT_COST", defaultBcryptCost),
		RedisURL:                getString(lookup, "REDIS_URL", ""),
		ShutdownTimeout:         getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		RevocationSweepInterval: getDuration(lookup, "REVOCATION_SWEEP_INTERVAL", defaultRevocationSweepInterval),
		LogLevel:                getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	flags := flag.NewFlagSet("coworking", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		sweepIntervalStr   = cfg.RevocationSweepInterval.String()
		corsOrigins        = getString(lookup, "CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	flags.StringVar(&cfg.TokenSecret, "secret", cfg.TokenSecret, "Secret for signing auth tokens")
	flags.StringVar(&cfg.TokenStrategy, "token-strategy", cfg.TokenStrategy, "Token format: jwt, hmac or paseto")
	flags.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Lifetime of issued tokens")
	flags.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt work factor for password hashes")
	flags.StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "Redis URL for token revocation")
	flags.StringVar(&corsOrigins, "cors-origins", corsOrigins, "Comma separated list of allowed CORS origins")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	flags.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between revoked token purges")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.RevocationSweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	secretFromFlag := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "secret" {
			secretFromFlag = true
		}
	})

	// TOKEN_SECRET_FILE replaces TOKEN_SECRET but never an explicit -secret flag.
	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" && !secretFromFlag {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = strings.TrimSpace(string(content))
	}

	cfg.CORSAllowedOrigins = splitList(corsOrigins)

	if cfg.BcryptCost < defaultBcryptCost {
		cfg.BcryptCost = defaultBcryptCost
	}
	if cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d exceeds maximum %d", cfg.BcryptCost, bcrypt.MaxCost)
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.RevocationSweepInterval <= 0 {
		cfg.RevocationSweepInterval = defaultRevocationSweepInterval
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("token secret must be provided")
	}

	switch cfg.TokenStrategy {
	case "jwt", "hmac", "paseto":
	default:
		return nil, fmt.Errorf("unsupported token strategy %q", cfg.TokenStrategy)
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
