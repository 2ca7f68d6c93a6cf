package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/folio/pkg/httpx"
	"github.com/aussiebroadwan/folio/pkg/jwtx"
	"github.com/aussiebroadwan/folio/pkg/lockout"
)

var ErrConfigInvalid = errors.New("invalid configuration")

type Config struct {
	TokenSecret string // Required: HS256 session signing secret, at least 32 bytes

	DatabaseFile string // Optional: path to SQLite database file (default: ./folio.db)

	OwnerEmail    string // Optional: seeds an OWNER account on startup when set with OwnerPassword
	OwnerUsername string // Optional: seeded owner's username (default: owner)
	OwnerPassword string // Optional: seeded owner's password

	LoginMaxAttempts       int           // Failed logins per client IP before lockout (default: 5)
	LoginLockoutWindow     time.Duration // Sliding window the failures are counted over (default: 15m)
	LoginLockoutMaxEntries int           // Cap on tracked client IPs (default: 10000)

	CORSAllowedOrigins []string // Optional: origins allowed to make credentialed requests
	TrustedProxies     []string // Optional: proxy IPs/CIDRs whose X-Forwarded-For is believed

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Lockout sweep interval (default: 5m)
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first; variables already set win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		TokenSecret:            os.Getenv("FOLIO_TOKEN_SECRET"),
		DatabaseFile:           getEnvOrDefault("FOLIO_DATABASE_FILE", "folio.db"),
		OwnerEmail:             os.Getenv("FOLIO_OWNER_EMAIL"),
		OwnerUsername:          os.Getenv("FOLIO_OWNER_USERNAME"),
		OwnerPassword:          os.Getenv("FOLIO_OWNER_PASSWORD"),
		LoginMaxAttempts:       getEnvIntOrDefault("LOGIN_MAX_ATTEMPTS", lockout.DefaultThreshold),
		LoginLockoutWindow:     getEnvDurationOrDefault("LOGIN_LOCKOUT_WINDOW", lockout.DefaultWindow),
		LoginLockoutMaxEntries: getEnvIntOrDefault("LOGIN_LOCKOUT_MAX_ENTRIES", lockout.DefaultMaxEntries),
		CORSAllowedOrigins:     getEnvList("CORS_ALLOWED_ORIGINS"),
		TrustedProxies:         getEnvList("TRUSTED_PROXIES"),
		Env:                    getEnvOrDefault("ENV", "dev"),
		LogLevel:               getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:              getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                   getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:    getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval:   getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 5*time.Minute),
	}

	return cfg, cfg.Validate()
}

// Validate reports every problem with cfg at once.
func (c Config) Validate() error {
	var errs []error

	if len(c.TokenSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("FOLIO_TOKEN_SECRET must be at least %d bytes", jwtx.MinSecretLength))
	}
	if (c.OwnerEmail == "") != (c.OwnerPassword == "") {
		errs = append(errs, errors.New("FOLIO_OWNER_EMAIL and FOLIO_OWNER_PASSWORD must be set together"))
	}
	if c.LoginMaxAttempts <= 0 {
		errs = append(errs, errors.New("LOGIN_MAX_ATTEMPTS must be positive"))
	}
	if c.LoginLockoutWindow <= 0 {
		errs = append(errs, errors.New("LOGIN_LOCKOUT_WINDOW must be positive"))
	}
	if _, err := httpx.ParseTrustedProxies(c.TrustedProxies); err != nil {
		errs = append(errs, fmt.Errorf("TRUSTED_PROXIES: %w", err))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, errors.Join(errs...))
	}
	return nil
}

// Lockout returns the login lockout settings.
func (c Config) Lockout() lockout.Config {
	return lockout.Config{
		Threshold:  c.LoginMaxAttempts,
		Window:     c.LoginLockoutWindow,
		MaxEntries: c.LoginLockoutMaxEntries,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

// getEnvList splits a comma-separated variable, dropping blanks.
func getEnvList(key string) []string {
	var out []string
	for item := range strings.SplitSeq(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
