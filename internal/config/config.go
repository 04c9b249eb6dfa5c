package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// envFiles are loaded in order when present; values already set in the
// process environment always win.
var envFiles = []string{"variaveis.env", ".env"}

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	PublicDir  string
	LogLevel   string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBMaxOpenConns int
	RunMigrations  bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	SessionSecret       string
	SessionCookieName   string
	SessionCookieSecure bool
	SessionTTL          time.Duration

	// PasswordHashing stores new passwords as bcrypt hashes. Off by default so
	// existing plaintext rows keep working unchanged.
	PasswordHashing bool

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	for _, f := range envFiles {
		// Missing files are fine, the environment is the source of truth.
		_ = godotenv.Load(f)
	}

	return &Config{
		ServerPort: getEnv("PORT", "3001"),
		PublicDir:  getEnv("PUBLIC_DIR", "public"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "root"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getEnv("DB_NAME", "labadmin"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 1),
		RunMigrations:  getEnvBool("RUN_MIGRATIONS", true),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		SessionSecret:       getEnv("SESSION_SECRET", "change-me"),
		SessionCookieName:   getEnv("SESSION_COOKIE_NAME", "connect.sid"),
		SessionCookieSecure: getEnvBool("SESSION_COOKIE_SECURE", false),
		SessionTTL:          getEnvDuration("SESSION_TTL", 24*time.Hour),

		PasswordHashing: getEnvBool("PASSWORD_HASHING", false),

		SwaggerHost: os.Getenv("SWAGGER_HOST"),
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

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
