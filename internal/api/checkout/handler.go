// Package checkout holds the payer-facing endpoints consumed by the
// hosted checkout page. They are deliberately unauthenticated and
// expose a narrower projection of the payment than the merchant API.
package checkout

import (
	"errors"
	"net/http"

	"payment-gateway/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

type infoResponse struct {
	PaymentID   string         `json:"paymentId"`
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	Description string         `json:"description"`
	Fee         float64        `json:"fee"`
	TotalAmount float64        `json:"totalAmount"`
	Status      payment.Status `json:"status"`
}

// PaymentInfo handles GET /payment-info?paymentId=...
// The projection never includes customerEmail or the callback URLs.
func PaymentInfo(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		paymentID := c.Query("paymentId")
		if paymentID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment ID is required"})
			return
		}

		p, err := svc.Get(c.Request.Context(), paymentID)
		if err != nil {
			if errors.Is(err, payment.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment"})
			return
		}

		c.JSON(http.StatusOK, infoResponse{
			PaymentID:   p.PaymentID,
			Amount:      p.Amount,
			Currency:    p.Currency,
			Description: p.Description,
			Fee:         p.Fee,
			TotalAmount: p.TotalAmount,
			Status:      p.Status,
		})
	}
}

// CompletePayment handles POST /complete-payment?paymentId=...
// Completing twice is an error, not a no-op.
func CompletePayment(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		paymentID := c.Query("paymentId")
		if paymentID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment ID is required"})
			return
		}

		p, err := svc.Complete(c.Request.Context(), paymentID)
		if err != nil {
			switch {
			case errors.Is(err, payment.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			case errors.Is(err, payment.ErrAlreadyCompleted):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Payment already completed"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete payment"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"paymentId":   p.PaymentID,
			"status":      p.Status,
			"redirectUrl": p.SuccessURL,
		})
	}
}
