package main

import (
	"flag"
	"os"
	"strings"
	"syscall"

	"github.com/kitoblarda/internal/app"
	"github.com/kitoblarda/internal/config"
	"github.com/kitoblarda/internal/logger"
	"github.com/kitoblarda/internal/models"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.UserJWT.SecretKey) {
			stdLog.Fatalf("user_jwt.secret is weak or still the default, set a strong random key in production")
		}
	} else if isWeakSecret(cfg.UserJWT.SecretKey) {
		stdLog.Printf("warning: user_jwt.secret is weak or still the default, change it before going to production")
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.PoolOptions{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}

	// First staff account. Skipped in release unless the password is
	// provided explicitly.
	staffPhone := os.Getenv("KB_DEFAULT_STAFF_PHONE")
	staffPass := os.Getenv("KB_DEFAULT_STAFF_PASSWORD")
	if cfg.Server.Mode == "release" && staffPass == "" {
		stdLog.Printf("warning: KB_DEFAULT_STAFF_PASSWORD not set, skipped default staff init")
	} else if err := models.InitDefaultStaff(models.DB, staffPhone, staffPass); err != nil {
		stdLog.Printf("warning: default staff init failed: %v", err)
	}

	// Transfer card shown to customers at checkout.
	cardNumber := os.Getenv("KB_PAYMENT_CARD_NUMBER")
	cardHolder := os.Getenv("KB_PAYMENT_CARD_HOLDER")
	if cardNumber != "" {
		if err := models.EnsurePaymentSetting(models.DB, cardNumber, cardHolder); err != nil {
			stdLog.Printf("warning: payment setting init failed: %v", err)
		}
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "run mode: all (default), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("run failed: %v", err)
	}
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
