package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig collects everything the server needs from the environment.
// Contact relay and analytics identifiers are optional: leaving them unset
// disables the dependent feature instead of failing startup.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	// SecureCookies must stay false when the server is reached over plain
	// HTTP; Secure session cookies are dropped by the browser there.
	SecureCookies bool
	GinMode       string

	// Object storage for uploaded media.
	MediaDir     string
	MediaURLPath string

	AdminUserName string
	AdminPassword string
	SiteBaseURL   string

	// Contact relay (SMTP). Host, sender and recipient are the three
	// identifiers the dispatcher requires before it will dial.
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	ContactSender    string
	ContactRecipient string

	// Optional integrations.
	AnalyticsID    string
	WhatsAppNumber string
}

// Load reads the application configuration from environment variables and
// fills in safe defaults for anything missing.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "g8studio.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "g8studio-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	mediaDir := strings.TrimSpace(os.Getenv("MEDIA_DIR"))
	if mediaDir == "" {
		mediaDir = "web/static/media"
	}

	mediaURLPath := strings.TrimSpace(os.Getenv("MEDIA_URL_PATH"))
	if mediaURLPath == "" {
		mediaURLPath = "/media"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "https://g8studio.id"
	}

	secureCookies := false
	if raw := strings.TrimSpace(os.Getenv("SECURE_COOKIES")); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			secureCookies = parsed
		}
	}

	smtpPort := 587
	if raw := strings.TrimSpace(os.Getenv("SMTP_PORT")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			smtpPort = parsed
		}
	}

	return AppConfig{
		ListenAddr:       listenAddr,
		Port:             port,
		DatabasePath:     databasePath,
		SessionSecret:    sessionSecret,
		SecureCookies:    secureCookies,
		GinMode:          ginMode,
		MediaDir:         mediaDir,
		MediaURLPath:     mediaURLPath,
		AdminUserName:    strings.TrimSpace(os.Getenv("ADMIN_USER_NAME")),
		AdminPassword:    strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		SiteBaseURL:      siteBaseURL,
		SMTPHost:         strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:         smtpPort,
		SMTPUsername:     strings.TrimSpace(os.Getenv("SMTP_USERNAME")),
		SMTPPassword:     strings.TrimSpace(os.Getenv("SMTP_PASSWORD")),
		ContactSender:    strings.TrimSpace(os.Getenv("CONTACT_SENDER")),
		ContactRecipient: strings.TrimSpace(os.Getenv("CONTACT_RECIPIENT")),
		AnalyticsID:      strings.TrimSpace(os.Getenv("ANALYTICS_MEASUREMENT_ID")),
		WhatsAppNumber:   strings.TrimSpace(os.Getenv("WHATSAPP_NUMBER")),
	}
}
