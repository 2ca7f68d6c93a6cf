package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "app-test-secret-0123456789abcdefghij"

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here
	t.Setenv("FOLIO_TOKEN_SECRET", testSecret)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "folio.db", cfg.DatabaseFile)
	require.Equal(t, 5, cfg.LoginMaxAttempts)
	require.Equal(t, 15*time.Minute, cfg.LoginLockoutWindow)
	require.Equal(t, 10_000, cfg.LoginLockoutMaxEntries)
	require.Empty(t, cfg.CORSAllowedOrigins)
	require.Empty(t, cfg.TrustedProxies)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 5*time.Minute, cfg.HousekeepingInterval)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FOLIO_TOKEN_SECRET", testSecret)
	t.Setenv("LOGIN_MAX_ATTEMPTS", "3")
	t.Setenv("LOGIN_LOCKOUT_WINDOW", "30") // bare minutes
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("PORT", "not-a-number")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.0.2.7")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 3, cfg.LoginMaxAttempts)
	require.Equal(t, 30*time.Minute, cfg.LoginLockoutWindow)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 8080, cfg.Port, "unparsable values fall back to the default")
	require.Equal(t, []string{"10.0.0.0/8", "192.0.2.7"}, cfg.TrustedProxies)

	lc := cfg.Lockout()
	require.Equal(t, 3, lc.Threshold)
	require.Equal(t, 30*time.Minute, lc.Window)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	env := "FOLIO_TOKEN_SECRET=" + testSecret + "\nFOLIO_DATABASE_FILE=from-dotenv.db\nPORT=9090\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("FOLIO_TOKEN_SECRET")
		_ = os.Unsetenv("FOLIO_DATABASE_FILE")
	})

	// Variables already in the environment win over the file
	t.Setenv("PORT", "7070")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "from-dotenv.db", cfg.DatabaseFile)
	require.Equal(t, 7070, cfg.Port)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		TokenSecret:        testSecret,
		LoginMaxAttempts:   5,
		LoginLockoutWindow: 15 * time.Minute,
		Port:               8080,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing secret", func(c *Config) { c.TokenSecret = "" }, "FOLIO_TOKEN_SECRET"},
		{"short secret", func(c *Config) { c.TokenSecret = "too-short" }, "at least 32 bytes"},
		{"owner email without password", func(c *Config) { c.OwnerEmail = "o@example.com" }, "must be set together"},
		{"owner password without email", func(c *Config) { c.OwnerPassword = "owner-password" }, "must be set together"},
		{"zero attempts", func(c *Config) { c.LoginMaxAttempts = 0 }, "LOGIN_MAX_ATTEMPTS"},
		{"negative window", func(c *Config) { c.LoginLockoutWindow = -time.Minute }, "LOGIN_LOCKOUT_WINDOW"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "PORT"},
		{"bad trusted proxy", func(c *Config) { c.TrustedProxies = []string{"10.0.0.0/99"} }, "TRUSTED_PROXIES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrConfigInvalid)
			require.ErrorContains(t, err, tt.want)
		})
	}

	t.Run("every problem is reported", func(t *testing.T) {
		err := Config{}.Validate()
		require.ErrorContains(t, err, "FOLIO_TOKEN_SECRET")
		require.ErrorContains(t, err, "LOGIN_MAX_ATTEMPTS")
		require.ErrorContains(t, err, "PORT")
	})
}

func TestNew_SeedsOwnerAndServes(t *testing.T) {
	cfg := Config{
		TokenSecret:          testSecret,
		DatabaseFile:         ":memory:",
		OwnerEmail:           "Owner@Example.com",
		OwnerPassword:        "owner-password-123",
		LoginMaxAttempts:     5,
		LoginLockoutWindow:   15 * time.Minute,
		LogLevel:             "error",
		Port:                 8080,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Minute,
	}

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	owner, err := app.db.Users().GetUserByEmail(context.Background(), "owner@example.com")
	require.NoError(t, err)
	require.True(t, owner.IsOwner())

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{})
	require.ErrorIs(t, err, ErrConfigInvalid)
}
