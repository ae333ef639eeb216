package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

const (
	defaultMaxOpenConns   = 25
	defaultMaxParallelism = 10
)

type Config struct {
	// database connection
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBDatabase   string
	DBPath       string // sqlite only
	AutoMigrate  bool   // sqlite only
	MaxOpenConns int

	// public host that serves images and videos
	ImageBaseURL string

	// graphql execution
	MaxParallelism int

	// http server
	AllowedOrigins []string
	Port           string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvBoolOrDefault(envVar string, defaultVal bool) bool {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s'. Using default %t. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func LoadConfig() (Config, error) {
	driver := getEnvOrDefault("DB_DRIVER", DriverMySQL)
	if driver != DriverMySQL && driver != DriverSQLite {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER '%s' (expected %s or %s)", driver, DriverMySQL, DriverSQLite)
	}

	port := getEnvOrDefault("DB_PORT", "3306")
	if _, err := strconv.Atoi(port); err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT '%s': %w", port, err)
	}

	cfg := Config{
		DBDriver:       driver,
		DBHost:         getEnvOrDefault("DB_HOST", "127.0.0.1"),
		DBPort:         port,
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBDatabase:     getEnvOrDefault("DB_DATABASE", "animethemes"),
		DBPath:         getEnvOrDefault("DB_PATH", "animethemes.db"),
		AutoMigrate:    getEnvBoolOrDefault("DB_AUTO_MIGRATE", false),
		MaxOpenConns:   getEnvIntOrDefault("DB_MAX_OPEN_CONNS", defaultMaxOpenConns),
		ImageBaseURL:   strings.TrimRight(getEnvOrDefault("IMAGE_BASE_URL", "https://staging.animethemes.moe"), "/"),
		MaxParallelism: getEnvIntOrDefault("GRAPHQL_MAX_PARALLELISM", defaultMaxParallelism),
		AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		Port:           getEnvOrDefault("PORT", "8080"),
	}

	return cfg, nil
}

// DSN returns the data source name for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return c.DBPath
	}

	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.DBHost, c.DBPort)
	mc.User = c.DBUser
	mc.Passwd = c.DBPassword
	mc.DBName = c.DBDatabase
	mc.ParseTime = true
	return mc.FormatDSN()
}
