package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DBSource string
	Port     string
	Timezone string

	JWTSecret string
	JWTTTL    time.Duration

	// hash ตอน load ครั้งเดียว เทียบด้วย bcrypt ตอน login
	AdminPasswordHash []byte

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	AdminInbox   string

	// SLA ชั่วโมงต่อ priority (ปรับได้ผ่าน env)
	SLAHigh   time.Duration
	SLAMedium time.Duration
	SLALow    time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	adminPassword := getEnv("ADMIN_PASSWORD", "")
	if adminPassword == "" {
		log.Fatal("missing env: ADMIN_PASSWORD")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash admin password failed: %v", err)
	}

	smtpUsername := getEnv("SMTP_USERNAME", "")
	fromEmail := getEnv("FROM_EMAIL", smtpUsername)

	return &Config{
		DBSource: getEnv("DB_SOURCE", "hsg_reporting.db"),
		Port:     getEnv("PORT", "8000"),
		Timezone: getEnv("APP_TZ", "Europe/Zurich"),

		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(12) * time.Hour,

		AdminPasswordHash: hash,

		SMTPHost:     getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: smtpUsername,
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    fromEmail,
		AdminInbox:   getEnv("ADMIN_INBOX", fromEmail),

		SLAHigh:   time.Duration(getEnvInt("SLA_HIGH_HOURS", 24)) * time.Hour,
		SLAMedium: time.Duration(getEnvInt("SLA_MEDIUM_HOURS", 72)) * time.Hour,
		SLALow:    time.Duration(getEnvInt("SLA_LOW_HOURS", 120)) * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for env %s: %q", key, v)
	}
	return n
}
