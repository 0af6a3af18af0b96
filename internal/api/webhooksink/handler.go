// Package webhooksink is a demo webhook receiver so the gateway can be
// exercised end to end without a second service: point webhookUrl at
// POST /webhook and watch the log.
package webhooksink

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Receive handles POST /webhook. It only logs the payload; a real
// consumer would verify X-Webhook-Signature and act on the event.
func Receive(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid webhook payload",
			})
			return
		}

		logger.Info("webhook received", zap.Any("payload", payload))

		event, _ := payload["event"].(string)
		paymentID, _ := payload["paymentId"].(string)
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"message":       "Webhook received",
			"receivedEvent": event,
			"paymentId":     paymentID,
		})
	}
}
