// Package payments holds the authenticated merchant-facing API:
// creating a payment intent and polling its status.
package payments

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"payment-gateway/config"
	"payment-gateway/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

type createRequest struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
	CustomerEmail string  `json:"customerEmail"`
	OrderID       string  `json:"orderId"`
	SuccessURL    string  `json:"successUrl"`
	WebhookURL    string  `json:"webhookUrl"`
}

type createResponse struct {
	PaymentID   string         `json:"paymentId"`
	PaymentURL  string         `json:"paymentUrl"`
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	Fee         float64        `json:"fee"`
	TotalAmount float64        `json:"totalAmount"`
	Status      payment.Status `json:"status"`
}

type statusResponse struct {
	PaymentID   string         `json:"paymentId"`
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	OrderID     string         `json:"orderId"`
	Status      payment.Status `json:"status"`
	Fee         float64        `json:"fee"`
	TotalAmount float64        `json:"totalAmount"`
	CreatedAt   time.Time      `json:"createdAt"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
}

// CreatePayment handles POST /payments.
func CreatePayment(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body createRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		p, err := svc.Create(c.Request.Context(), payment.CreateInput{
			Amount:        body.Amount,
			Currency:      body.Currency,
			Description:   body.Description,
			CustomerEmail: body.CustomerEmail,
			OrderID:       body.OrderID,
			SuccessURL:    body.SuccessURL,
			WebhookURL:    body.WebhookURL,
		})
		if err != nil {
			var verr *payment.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
			return
		}

		c.JSON(http.StatusCreated, createResponse{
			PaymentID:   p.PaymentID,
			PaymentURL:  checkoutURL(c, p.PaymentID),
			Amount:      p.Amount,
			Currency:    p.Currency,
			Fee:         p.Fee,
			TotalAmount: p.TotalAmount,
			Status:      p.Status,
		})
	}
}

// GetPayment handles GET /payments?paymentId=...
func GetPayment(svc *payment.Service) gin.HandlerFunc {
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

		c.JSON(http.StatusOK, statusResponse{
			PaymentID:   p.PaymentID,
			Amount:      p.Amount,
			Currency:    p.Currency,
			OrderID:     p.OrderID,
			Status:      p.Status,
			Fee:         p.Fee,
			TotalAmount: p.TotalAmount,
			CreatedAt:   p.CreatedAt,
			CompletedAt: p.CompletedAt,
		})
	}
}

// checkoutURL builds the hosted checkout link. BASE_URL wins when
// configured; otherwise the link is derived from the request host the
// same way the demo expects (http for localhost, https elsewhere).
func checkoutURL(c *gin.Context, paymentID string) string {
	base := config.BASE_URL
	if base == "" {
		host := c.Request.Host
		if host == "" {
			host = "localhost:8080"
		}
		scheme := "https"
		if strings.Contains(host, "localhost") || strings.HasPrefix(host, "127.0.0.1") {
			scheme = "http"
		}
		base = scheme + "://" + host
	}
	return base + "/payment?paymentId=" + paymentID
}
