package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Admin gate
	AdminPassword     string // plain comparison fallback for local dev
	AdminPasswordHash string // bcrypt hash, preferred when set
	JWTSecret         string
	JWTTTLHours       int

	// ✅ Redis Config
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ✅ Kafka Config (notification outbox)
	KafkaBrokers string
	KafkaTopic   string
	KafkaGroupID string

	// ✅ SMTP Config
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	// Festival settings
	BaseURL       string // public site root used to compose share links
	OperatorEmail string // receives the internal itinerary-saved notices
	Timezone      string // festival local timezone, e.g. America/Mexico_City
	DigestCron    string // cron expression for the daily digest
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	jwtTTL, _ := strconv.Atoi(os.Getenv("JWT_TTL_HOURS"))
	if jwtTTL == 0 {
		jwtTTL = 12
	}
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	cfg := &Config{
		Port: os.Getenv("PORT"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),

		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTTTLHours:       jwtTTL,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   os.Getenv("KAFKA_TOPIC"),
		KafkaGroupID: os.Getenv("KAFKA_GROUP_ID"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      os.Getenv("SMTP_PORT"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  os.Getenv("SMTP_FROM_NAME"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		BaseURL:       os.Getenv("BASE_URL"),
		OperatorEmail: os.Getenv("OPERATOR_EMAIL"),
		Timezone:      os.Getenv("TIMEZONE"),
		DigestCron:    os.Getenv("DIGEST_CRON"),
	}

	// Defaults that keep local dev working out of the box
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "America/Mexico_City"
	}
	if cfg.DigestCron == "" {
		cfg.DigestCron = "0 8 * * *" // 08:00 festival local time
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = "itinerary.saved"
	}
	if cfg.KafkaGroupID == "" {
		cfg.KafkaGroupID = "artweek-notifications"
	}

	return cfg
}

// Location resolves the festival timezone, falling back to UTC when the
// zone database does not know the configured name.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("⚠️ Unknown timezone %q, falling back to UTC", c.Timezone)
		return time.UTC
	}
	return loc
}
