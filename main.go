package main

import (
	"html/template"
	"log"
	"time"

	"payment-gateway/config"
	"payment-gateway/database"
	routes "payment-gateway/internal/app/http"
	"payment-gateway/internal/domain/payment"
	"payment-gateway/internal/notifier"
	"payment-gateway/internal/store/gormstore"
	"payment-gateway/internal/store/memory"
	"payment-gateway/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()

	logger := newLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// In-memory by default; postgres when DB_URL is set. The lifecycle
	// service is identical either way.
	var store payment.Store
	if config.DB_URL != "" {
		database.InitDB()
		store = gormstore.New(database.DB)
	} else {
		logger.Warn("DB_URL not set, payments are kept in memory only")
		store = memory.New()
	}

	webhooks := notifier.NewWebhookNotifier(config.WEBHOOK_SECRET, logger)
	svc := payment.NewService(store, webhooks)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{config.CORS_ORIGIN},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-API-Key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	routes.RegisterRoutes(r, svc, logger)

	logger.Info("payment gateway listening", zap.String("port", config.PORT))
	r.Run(":" + config.PORT)
}

func newLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if config.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	return logger
}
