package config

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	AppAddr     string
	GinMode     string
	JWTSecret   string
	CORSOrigins []string

	// Session persistence backend: Redis when RedisAddr is set, otherwise a
	// file under SessionDir.
	SessionDir string
	RedisAddr  string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "super-secret-key-change-me"
	}

	sessionDir := strings.TrimSpace(os.Getenv("SESSION_DIR"))
	if sessionDir == "" {
		sessionDir = ".session"
	}

	smtpPort := 587
	if v := strings.TrimSpace(os.Getenv("SMTP_PORT")); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			smtpPort = p
		}
	}

	mailFrom := strings.TrimSpace(os.Getenv("MAIL_FROM"))
	if mailFrom == "" {
		mailFrom = "bookings@travelbook.local"
	}

	// local frontend dev servers unless overridden
	corsOrigins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		corsOrigins = corsOrigins[:0]
		for _, o := range strings.Split(v, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				corsOrigins = append(corsOrigins, o)
			}
		}
	}

	return Env{
		AppAddr:      appAddr,
		GinMode:      strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret:    jwtSecret,
		CORSOrigins:  corsOrigins,
		SessionDir:   sessionDir,
		RedisAddr:    strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		SMTPHost:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:     smtpPort,
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     mailFrom,
	}
}
