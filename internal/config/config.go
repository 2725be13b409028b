package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	ServerPort string

	JWTSecret    string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	BcryptCost   int
	CookieSecure bool
	PageTake     int
	PageMaxTake  int
	LogLevel     string
	LogFormat    string
	GinMode      string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Warn("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "taskboard_user"),
		DBPassword:   getEnv("DB_PASSWORD", "taskboard_pass"),
		DBName:       getEnv("DB_NAME", "taskboard_db"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		JWTSecret:    getEnv("JWT_SECRET", "supersecretkey"),
		AccessTTL:    getDuration("JWT_ACCESS_TTL", 15*time.Minute),
		RefreshTTL:   getDuration("JWT_REFRESH_TTL", 7*24*time.Hour),
		BcryptCost:   getInt("BCRYPT_COST", bcrypt.DefaultCost),
		CookieSecure: getBool("COOKIE_SECURE", true),
		PageTake:     getInt("PAGE_DEFAULT_TAKE", 10),
		PageMaxTake:  getInt("PAGE_MAX_TAKE", 50),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		GinMode:      getEnv("GIN_MODE", "release"),
	}
}

// DSN builds the libpq keyword/value connection string for the pgx driver.
func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" port=" + c.DBPort +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" sslmode=" + c.DBSSLMode
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.WithField("key", key).Warnf("⚠️  invalid duration %q, using %s", raw, defaultVal)
		return defaultVal
	}
	return d
}

func getInt(key string, defaultVal int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.WithField("key", key).Warnf("⚠️  invalid number %q, using %d", raw, defaultVal)
		return defaultVal
	}
	return n
}

func getBool(key string, defaultVal bool) bool {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.WithField("key", key).Warnf("⚠️  invalid bool %q, using %t", raw, defaultVal)
		return defaultVal
	}
	return b
}
