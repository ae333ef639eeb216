package config

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_DATABASE",
	"DB_PATH", "DB_AUTO_MIGRATE", "DB_MAX_OPEN_CONNS", "IMAGE_BASE_URL",
	"GRAPHQL_MAX_PARALLELISM", "CORS_ALLOWED_ORIGINS", "PORT",
}

func clearEnv(t *testing.T) {
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, "127.0.0.1", cfg.DBHost)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "animethemes", cfg.DBDatabase)
	assert.Equal(t, "animethemes.db", cfg.DBPath)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, "https://staging.animethemes.moe", cfg.ImageBaseURL)
	assert.Equal(t, 10, cfg.MaxParallelism)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_PATH", "/tmp/themes.db")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("IMAGE_BASE_URL", "https://animethemes.moe/")
	t.Setenv("GRAPHQL_MAX_PARALLELISM", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test,")
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 4, cfg.MaxOpenConns)
	assert.Equal(t, "https://animethemes.moe", cfg.ImageBaseURL)
	assert.Equal(t, 10, cfg.MaxParallelism, "invalid values fall back to the default")
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/tmp/themes.db", cfg.DSN())
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "postgres")
	_, err := LoadConfig()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("DB_PORT", "http")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestMySQLDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "themes")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_DATABASE", "animethemes_prod")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	parsed, err := mysql.ParseDSN(cfg.DSN())
	require.NoError(t, err)
	assert.Equal(t, "tcp", parsed.Net)
	assert.Equal(t, "db.internal:3307", parsed.Addr)
	assert.Equal(t, "themes", parsed.User)
	assert.Equal(t, "s3cret", parsed.Passwd)
	assert.Equal(t, "animethemes_prod", parsed.DBName)
	assert.True(t, parsed.ParseTime)
}
