package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret-access-secret-0123456789"
	testRefreshSecret = "refresh-secret-refresh-secret-01234567"
)

func validConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	cfg.Auth.AccessTokenSecret = testAccessSecret
	cfg.Auth.RefreshTokenSecret = testRefreshSecret
	return cfg
}

func serveFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("env", "dev", "")
	fs.Int("port", 8080, "")
	fs.String("log-level", "info", "")
	fs.String("db-driver", "sqlite", "")
	fs.String("db-dsn", "", "")
	return fs
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, 10*time.Second, cfg.HTTP.ShutdownGracePeriod)
	require.Equal(t, int64(10<<10), cfg.HTTP.BodyLimitBytes)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	require.Equal(t, cryptox.DefaultCost, cfg.Auth.BcryptCost)
	require.Equal(t, "log", cfg.Mail.Driver)
	require.Equal(t, time.Hour, cfg.Housekeeping.Interval)
	require.False(t, cfg.Auth.ConcealUnknownEmail)
}

func TestLoadConfigLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: staging
http:
  port: 9000
  cors_origins: [https://app.example.com]
auth:
  access_token_ttl: 5m
database:
  driver: postgres
  dsn: postgres://todo:hunter2@db:5432/todo
`), 0o600))

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)
		require.Equal(t, "staging", cfg.Env)
		require.Equal(t, 9000, cfg.HTTP.Port)
		require.Equal(t, []string{"https://app.example.com"}, cfg.HTTP.CORSOrigins)
		require.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
		require.Equal(t, "postgres", cfg.Database.Driver)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("TODO_HTTP__PORT", "9100")
		t.Setenv("TODO_AUTH__ACCESS_TOKEN_TTL", "30m")
		t.Setenv("TODO_HTTP__CORS_ORIGINS", "https://a.example.com, https://b.example.com")
		t.Setenv("TODO_AUTH__CONCEAL_UNKNOWN_EMAIL", "true")

		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)
		require.Equal(t, 9100, cfg.HTTP.Port)
		require.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
		require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.CORSOrigins)
		require.True(t, cfg.Auth.ConcealUnknownEmail)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("TODO_HTTP__PORT", "9100")

		fs := serveFlags()
		require.NoError(t, fs.Parse([]string{"--port=9200", "--db-driver=sqlite", "--config=" + path}))

		cfg, err := LoadConfig(path, fs)
		require.NoError(t, err)
		require.Equal(t, 9200, cfg.HTTP.Port)
		require.Equal(t, "sqlite", cfg.Database.Driver)
		// Unset flags keep the lower layers.
		require.Equal(t, "staging", cfg.Env)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid"},
		{
			name:    "missing access secret",
			mutate:  func(c *Config) { c.Auth.AccessTokenSecret = "" },
			wantErr: "auth.access_token_secret is required",
		},
		{
			name:   "short secrets allowed in dev",
			mutate: func(c *Config) { c.Auth.AccessTokenSecret = "short-a"; c.Auth.RefreshTokenSecret = "short-r" },
		},
		{
			name: "short secrets rejected in production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.Auth.AccessTokenSecret = "short-a"
			},
			wantErr: "auth.access_token_secret must be at least",
		},
		{
			name:    "secrets must differ",
			mutate:  func(c *Config) { c.Auth.RefreshTokenSecret = c.Auth.AccessTokenSecret },
			wantErr: "must differ",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Database.Driver = "mysql" },
			wantErr: `database.driver "mysql"`,
		},
		{
			name:    "smtp needs a host",
			mutate:  func(c *Config) { c.Mail.Driver = "smtp" },
			wantErr: "mail.host is required",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.HTTP.Port = 70000 },
			wantErr: "http.port 70000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}

	t.Run("reports every problem", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Database.DSN = ""
		cfg.HTTP.Port = 0
		err := cfg.Validate()
		require.ErrorContains(t, err, "database.dsn is required")
		require.ErrorContains(t, err, "http.port 0")
	})
}

func TestConfigRedacted(t *testing.T) {
	cfg := validConfig(t)
	cfg.Mail.Password = "smtp-pass"
	cfg.Database.DSN = "postgres://todo:hunter2@db:5432/todo?sslmode=disable"

	r := cfg.Redacted()
	require.Equal(t, "[redacted]", r.Auth.AccessTokenSecret)
	require.Equal(t, "[redacted]", r.Auth.RefreshTokenSecret)
	require.Equal(t, "[redacted]", r.Mail.Password)
	require.Equal(t, "postgres://todo:[redacted]@db:5432/todo?sslmode=disable", r.Database.DSN)

	// The receiver is untouched.
	require.Equal(t, testAccessSecret, cfg.Auth.AccessTokenSecret)
}

func TestRenderConfig(t *testing.T) {
	t.Setenv("TODO_AUTH__ACCESS_TOKEN_SECRET", testAccessSecret)
	t.Setenv("TODO_DATABASE__DSN", "postgres://todo:hunter2@db/todo")

	out, err := RenderConfig("", nil)
	require.NoError(t, err)
	require.Contains(t, string(out), "access_token_secret:")
	require.Contains(t, string(out), "[redacted]")
	require.Contains(t, string(out), "postgres://todo:[redacted]@db/todo")
	require.NotContains(t, string(out), testAccessSecret)
	require.NotContains(t, string(out), "hunter2")
}

func TestEnvKey(t *testing.T) {
	require.Equal(t, "auth.access_token_secret", envKey("TODO_AUTH__ACCESS_TOKEN_SECRET"))
	require.Equal(t, "env", envKey("TODO_ENV"))
}
