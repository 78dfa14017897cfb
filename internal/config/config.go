package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// Internships
	RequireInternshipApproval bool
	DeadlineSweepSpec         string

	// Logs
	LogLevel       string
	LogRetention   time.Duration
	LogCleanupSpec string

	// Mail (empty SMTPHost disables outgoing mail)
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	// Server
	Port            string
	CORSOrigins     string
	SentryDSN       string
	RateLimit       int
	AuthRateLimit   int
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "internlink"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "168h"), 7*24*time.Hour),

		RequireInternshipApproval: parseBool(getEnv("REQUIRE_INTERNSHIP_APPROVAL", "false")),
		DeadlineSweepSpec:         getEnv("DEADLINE_SWEEP_SPEC", "@every 1h"),

		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogRetention:   parseDuration(getEnv("LOG_RETENTION", "720h"), 30*24*time.Hour),
		LogCleanupSpec: getEnv("LOG_CLEANUP_SPEC", "@daily"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     parseInt(getEnv("SMTP_PORT", "587"), 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "no-reply@internlink.local"),

		Port:            getEnv("PORT", "4000"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
		SentryDSN:       getEnv("SENTRY_DSN", ""),
		RateLimit:       parseInt(getEnv("RATE_LIMIT", "60"), 60),
		AuthRateLimit:   parseInt(getEnv("AUTH_RATE_LIMIT", "10"), 10),
		ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
