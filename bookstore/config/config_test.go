package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "pgx", cfg.Database.Driver)
	require.Equal(t, "bookstore.db", cfg.Database.SQLite.Path)
	require.Equal(t, 24*time.Hour, cfg.Auth.TTL)
	require.True(t, cfg.Reservation.PinBookDate)
	require.False(t, cfg.Kafka.Enabled())
	require.Equal(t, zapcore.InfoLevel, cfg.Log.LogLevel)
}

func TestLoad_EnvAndFile(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KAFKA_ADDRS", "k1:9092,k2:9092")
	t.Setenv("DB_DRIVER", "sqlite")

	path := filepath.Join(t.TempDir(), "bookstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  sqlite:
    path: /var/lib/bookstore.db
reservation:
  pinBookDate: false
log:
  level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Addrs)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, "/var/lib/bookstore.db", cfg.Database.SQLite.Path)
	require.False(t, cfg.Reservation.PinBookDate)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("DB_DRIVER", "mysql")
	_, err = Load("")
	require.ErrorContains(t, err, `unknown database driver "mysql"`)
}
