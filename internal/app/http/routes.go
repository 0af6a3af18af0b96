package routes

import (
	"payment-gateway/internal/api/checkout"
	"payment-gateway/internal/api/pages"
	"payment-gateway/internal/api/payments"
	"payment-gateway/internal/api/webhooksink"
	"payment-gateway/internal/app/http/middleware"
	"payment-gateway/internal/domain/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, svc *payment.Service, logger *zap.Logger) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Hosted checkout UI
	r.GET("/", pages.Home())
	r.GET("/payment", pages.Checkout())
	r.GET("/success", pages.Success())

	// Demo webhook receiver
	r.POST("/webhook", webhooksink.Receive(logger))

	// Payer-facing endpoints, no credential required
	public := r.Group("/")
	public.Use(middleware.SanitizeInput())
	public.GET("/payment-info", checkout.PaymentInfo(svc))
	public.POST("/complete-payment", checkout.CompletePayment(svc))

	// Merchant API
	api := r.Group("/")
	api.Use(middleware.APIKeyAuth(logger), middleware.SanitizeInput())
	api.POST("/payments", payments.CreatePayment(svc))
	api.GET("/payments", payments.GetPayment(svc))
}
