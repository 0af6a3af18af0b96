// Package notifier delivers payment.completed webhooks.
//
// Delivery is best-effort and runs off the request path: a slow or dead
// webhook endpoint never delays or fails the completion that triggered
// it. There is no retry or dead-letter handling; failures are logged
// and dropped.
package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"payment-gateway/internal/domain/payment"
)

const deliverTimeout = 10 * time.Second

type WebhookNotifier struct {
	client *http.Client
	secret string
	logger *zap.Logger
}

// NewWebhookNotifier builds a notifier. secret may be empty; when set,
// payloads carry an X-Webhook-Signature header (hex HMAC-SHA256 of the
// body) the receiver can verify.
func NewWebhookNotifier(secret string, logger *zap.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		client: &http.Client{Timeout: deliverTimeout},
		secret: secret,
		logger: logger,
	}
}

// Notify dispatches delivery on its own goroutine and returns
// immediately.
func (n *WebhookNotifier) Notify(webhookURL string, ev payment.Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
		defer cancel()

		if err := n.Deliver(ctx, webhookURL, ev); err != nil {
			n.logger.Warn("webhook delivery failed",
				zap.String("url", webhookURL),
				zap.String("paymentId", ev.PaymentID),
				zap.Error(err))
			return
		}
		n.logger.Info("webhook delivered",
			zap.String("url", webhookURL),
			zap.String("paymentId", ev.PaymentID))
	}()
}

// Deliver POSTs the event synchronously. Split out from Notify so it
// can be exercised directly in tests.
func (n *WebhookNotifier) Deliver(ctx context.Context, webhookURL string, ev payment.Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.secret != "" {
		req.Header.Set("X-Webhook-Signature", Sign(n.secret, body))
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned %d", resp.StatusCode)
	}
	return nil
}

// Sign returns the hex HMAC-SHA256 of body under secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
