package main

import (
	"log"

	"github.com/AnthoniusHendriyanto/g8studio/internal/config"
	"github.com/AnthoniusHendriyanto/g8studio/internal/db"
	"github.com/AnthoniusHendriyanto/g8studio/internal/handler"
	"github.com/AnthoniusHendriyanto/g8studio/internal/router"
	"github.com/AnthoniusHendriyanto/g8studio/internal/service"
	"github.com/AnthoniusHendriyanto/g8studio/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := db.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if err := db.EnsureUser(gdb, cfg.AdminUserName, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	store, err := storage.NewLocalStorage(cfg.MediaDir, cfg.MediaURLPath)
	if err != nil {
		log.Fatalf("failed to initialize media storage: %v", err)
	}

	contact := service.NewContactDispatcher(service.RelayConfig{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		Sender:    cfg.ContactSender,
		Recipient: cfg.ContactRecipient,
	})
	if !contact.Configured() {
		log.Println("contact relay is not fully configured; the contact form will report failures")
	}

	api := handler.NewAPI(gdb, store, contact, handler.SiteOptions{
		BaseURL:        cfg.SiteBaseURL,
		AnalyticsID:    cfg.AnalyticsID,
		WhatsAppNumber: cfg.WhatsAppNumber,
	})

	r := router.SetupRouter(api, router.Options{
		SessionSecret: cfg.SessionSecret,
		SecureCookies: cfg.SecureCookies,
		MediaDir:      cfg.MediaDir,
		MediaURLPath:  cfg.MediaURLPath,
	})
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
