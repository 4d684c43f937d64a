package config

import (
	"os"
	"strconv"
	"strings"

	"go-attendance/internal/shared/connection"

	"github.com/joho/godotenv"
)

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether SMTP credentials are present; without them mail is only logged.
func (m MailConfig) Enabled() bool {
	return m.Username != ""
}

type KafkaConfig struct {
	Broker            string
	NotificationGroup string
}

type Config struct {
	AppEnv    string
	Port      string
	DB        connection.PostgresConfig
	RedisAddr string
	Kafka     KafkaConfig
	JWTSecret string
	BaseURL   string
	Mail      MailConfig

	// LateAfter is an HH:MM cutoff; empty disables lateness marking.
	LateAfter string

	// LeaveRejectOverlap refuses leave requests overlapping an open one.
	LeaveRejectOverlap bool
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads .env when present and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv: GetEnv("APP_ENV", "development"),
		Port:   GetEnv("PORT", "3000"),
		DB: connection.PostgresConfig{
			Host:     GetEnv("DB_HOST", "localhost"),
			User:     GetEnv("DB_USER", "postgres"),
			Password: GetEnv("DB_PASSWORD", ""),
			Name:     GetEnv("DB_NAME", "attendance"),
			Port:     GetEnv("DB_PORT", "5432"),
			SSLMode:  GetEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr: GetEnv("REDIS_ADDR", "localhost:6379"),
		Kafka: KafkaConfig{
			Broker:            GetEnv("KAFKA_BROKER", ""),
			NotificationGroup: GetEnv("KAFKA_NOTIFICATION_GROUP", "go-attendance-notification"),
		},
		JWTSecret: GetEnv("JWT_SECRET", ""),
		BaseURL:   strings.TrimRight(GetEnv("BASE_URL", "http://localhost:3000"), "/"),
		Mail: MailConfig{
			Host:     GetEnv("MAIL_HOST", "smtp.gmail.com"),
			Port:     GetEnvAsInt("MAIL_PORT", 587),
			Username: GetEnv("MAIL_USERNAME", ""),
			Password: GetEnv("MAIL_PASSWORD", ""),
			From:     GetEnv("MAIL_FROM", GetEnv("MAIL_USERNAME", "")),
		},
		LateAfter:          GetEnv("ATTENDANCE_LATE_AFTER", ""),
		LeaveRejectOverlap: GetEnvAsBool("LEAVE_REJECT_OVERLAP", false),
	}
}

func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(GetEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(GetEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
