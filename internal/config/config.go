package config

import (
	"os"
	"strconv"
	"time"
)

// Store drivers.
const (
	DriverJSON  = "json"
	DriverMySQL = "mysql"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	DataFile    string
	StoreDriver string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	SecretKey   string
	SessionTTL  time.Duration
	// CookieSecure marks the session cookie Secure; enable behind TLS.
	CookieSecure bool
	// CodeHashing stores bcrypt hashes instead of plaintext codes.
	CodeHashing bool
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:   getEnv("SERVER_PORT", getEnv("PORT", "5000")),
		DataFile:     getEnv("DATA_FILE", "dino_tracker_data.json"),
		StoreDriver:  getEnv("STORE_DRIVER", DriverJSON),
		MySQLDSN:     getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/dinoledger?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		SecretKey:    getEnv("SECRET_KEY", "dev-key-change-in-production"),
		SessionTTL:   time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		CookieSecure: getEnvBool("COOKIE_SECURE", false),
		CodeHashing:  getEnvBool("CODE_HASHING", false),
		SwaggerHost:  os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
