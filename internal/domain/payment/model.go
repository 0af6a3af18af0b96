package payment

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Payment is the single source of truth for one payment intent.
// Amounts are kept in the unit supplied by the caller; Fee and TotalAmount
// are derived once at creation and never recomputed.
type Payment struct {
	PaymentID     string     `json:"paymentId" gorm:"primaryKey;column:payment_id"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Description   string     `json:"description"`
	CustomerEmail string     `json:"customerEmail"`
	OrderID       string     `json:"orderId"`
	SuccessURL    string     `json:"successUrl,omitempty"`
	WebhookURL    string     `json:"webhookUrl,omitempty"`
	Fee           float64    `json:"fee"`
	TotalAmount   float64    `json:"totalAmount"`
	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// Event is the outbound webhook payload emitted when a payment completes.
type Event struct {
	Event     string    `json:"event"`
	PaymentID string    `json:"paymentId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	OrderID   string    `json:"orderId"`
	Timestamp time.Time `json:"timestamp"`
}

const EventPaymentCompleted = "payment.completed"
