package payment

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SupportedCurrencies is the fixed set accepted at creation.
var SupportedCurrencies = []string{"USD", "EUR", "GBP", "CHF", "JPY", "CAD", "AUD"}

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Store is the key-value contract the lifecycle service runs against.
// Implementations may live in-process or behind a database; the service
// never assumes locality.
type Store interface {
	Put(ctx context.Context, id string, p *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
}

// Notifier receives completion events. Delivery is fire-and-forget from
// the service's perspective: implementations must not block and their
// failures never surface through Complete.
type Notifier interface {
	Notify(webhookURL string, ev Event)
}

// CreateInput carries the caller-supplied fields for a new payment.
type CreateInput struct {
	Amount        float64
	Currency      string
	Description   string
	CustomerEmail string
	OrderID       string
	SuccessURL    string
	WebhookURL    string
}

// Service implements the payment lifecycle: create, complete, get.
type Service struct {
	store    Store
	notifier Notifier
	now      func() time.Time

	// mu serializes the check-then-set inside Complete so two racing
	// completions cannot both pass the status check.
	mu sync.Mutex
}

func NewService(store Store, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// Create validates the input, prices the payment and persists it with
// status "pending". Each unmet constraint yields a distinct
// *ValidationError.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Payment, error) {
	if in.Amount <= 0 {
		return nil, newValidationError("Valid amount is required")
	}
	if !isSupportedCurrency(in.Currency) {
		return nil, newValidationError(fmt.Sprintf(
			"Currency must be one of: %s", strings.Join(SupportedCurrencies, ", ")))
	}
	if !emailRegexp.MatchString(in.CustomerEmail) {
		return nil, newValidationError("Valid customer email is required")
	}
	if in.OrderID == "" {
		return nil, newValidationError("Order ID is required")
	}

	fee := CalculateFee(in.Amount)
	p := &Payment{
		PaymentID:     uuid.NewString(),
		Amount:        in.Amount,
		Currency:      in.Currency,
		Description:   in.Description,
		CustomerEmail: in.CustomerEmail,
		OrderID:       in.OrderID,
		SuccessURL:    in.SuccessURL,
		WebhookURL:    in.WebhookURL,
		Fee:           fee,
		TotalAmount:   TotalWithFee(in.Amount, fee),
		Status:        StatusPending,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.store.Put(ctx, p.PaymentID, p); err != nil {
		return nil, fmt.Errorf("persist payment: %w", err)
	}
	return p, nil
}

// Get looks up a payment. Returns ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, paymentID string) (*Payment, error) {
	if paymentID == "" {
		return nil, ErrNotFound
	}
	return s.store.Get(ctx, paymentID)
}

// Complete transitions a pending payment to completed, stamps
// completedAt and emits exactly one payment.completed event. A repeat
// call returns ErrAlreadyCompleted.
func (s *Service) Complete(ctx context.Context, paymentID string) (*Payment, error) {
	if paymentID == "" {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if p.Status == StatusCompleted {
		return nil, ErrAlreadyCompleted
	}
	if !CanTransition(p.Status, StatusCompleted) {
		return nil, fmt.Errorf("cannot complete payment in status %q", p.Status)
	}

	completedAt := s.now().UTC()
	p.Status = StatusCompleted
	p.CompletedAt = &completedAt

	if err := s.store.Put(ctx, p.PaymentID, p); err != nil {
		return nil, fmt.Errorf("persist payment: %w", err)
	}

	if p.WebhookURL != "" {
		s.notifier.Notify(p.WebhookURL, Event{
			Event:     EventPaymentCompleted,
			PaymentID: p.PaymentID,
			Amount:    p.Amount,
			Currency:  p.Currency,
			OrderID:   p.OrderID,
			Timestamp: completedAt,
		})
	}

	return p, nil
}

func isSupportedCurrency(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}
	return false
}
