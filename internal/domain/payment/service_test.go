package payment_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-gateway/internal/domain/payment"
	"payment-gateway/internal/store/memory"
)

// recordingNotifier captures emitted events so tests can assert on the
// webhook signal without any HTTP involved.
type recordingNotifier struct {
	mu     sync.Mutex
	urls   []string
	events []payment.Event
}

func (n *recordingNotifier) Notify(webhookURL string, ev payment.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.urls = append(n.urls, webhookURL)
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

func newTestService() (*payment.Service, *recordingNotifier) {
	n := &recordingNotifier{}
	return payment.NewService(memory.New(), n), n
}

func validInput() payment.CreateInput {
	return payment.CreateInput{
		Amount:        100,
		Currency:      "USD",
		CustomerEmail: "a@b.com",
		OrderID:       "ORDER-1",
	}
}

func TestCreate_PricesEveryCurrency(t *testing.T) {
	svc, _ := newTestService()

	for _, currency := range payment.SupportedCurrencies {
		in := validInput()
		in.Currency = currency

		p, err := svc.Create(context.Background(), in)
		require.NoError(t, err, currency)

		assert.Equal(t, 2.5, p.Fee, currency)
		assert.Equal(t, 102.5, p.TotalAmount, currency)
		assert.Equal(t, payment.StatusPending, p.Status)
		assert.False(t, p.CreatedAt.IsZero())
		assert.Nil(t, p.CompletedAt)
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*payment.CreateInput)
		wantMsg string
	}{
		{
			name:    "zero amount",
			mutate:  func(in *payment.CreateInput) { in.Amount = 0 },
			wantMsg: "Valid amount is required",
		},
		{
			name:    "negative amount",
			mutate:  func(in *payment.CreateInput) { in.Amount = -5 },
			wantMsg: "Valid amount is required",
		},
		{
			name:    "unsupported currency",
			mutate:  func(in *payment.CreateInput) { in.Currency = "XYZ" },
			wantMsg: "Currency must be one of: USD, EUR, GBP, CHF, JPY, CAD, AUD",
		},
		{
			name:    "bad email",
			mutate:  func(in *payment.CreateInput) { in.CustomerEmail = "not-an-email" },
			wantMsg: "Valid customer email is required",
		},
		{
			name:    "missing order id",
			mutate:  func(in *payment.CreateInput) { in.OrderID = "" },
			wantMsg: "Order ID is required",
		},
	}

	svc, _ := newTestService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)
			require.Error(t, err)

			var verr *payment.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestCreate_UniquePaymentIDs(t *testing.T) {
	svc, _ := newTestService()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)
		require.NotEmpty(t, p.PaymentID)
		assert.False(t, seen[p.PaymentID], "duplicate id %s", p.PaymentID)
		seen[p.PaymentID] = true
	}
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Get(context.Background(), "no-such-payment")
	assert.ErrorIs(t, err, payment.ErrNotFound)

	_, err = svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, payment.ErrNotFound)
}

func TestComplete_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Complete(context.Background(), "no-such-payment")
	assert.ErrorIs(t, err, payment.ErrNotFound)
}

func TestComplete_TransitionsOnce(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	completed, err := svc.Complete(ctx, created.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.False(t, completed.CompletedAt.Before(created.CreatedAt))

	// The transition is persisted, not just returned.
	fresh, err := svc.Get(ctx, created.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusCompleted, fresh.Status)
	require.NotNil(t, fresh.CompletedAt)

	// Completion is not idempotent: the second call is an error.
	_, err = svc.Complete(ctx, created.PaymentID)
	assert.ErrorIs(t, err, payment.ErrAlreadyCompleted)
}

func TestComplete_EmitsWebhookEvent(t *testing.T) {
	svc, n := newTestService()
	ctx := context.Background()

	in := validInput()
	in.WebhookURL = "https://merchant.example/hooks"
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)

	completed, err := svc.Complete(ctx, created.PaymentID)
	require.NoError(t, err)

	require.Equal(t, 1, n.count())
	assert.Equal(t, "https://merchant.example/hooks", n.urls[0])

	ev := n.events[0]
	assert.Equal(t, "payment.completed", ev.Event)
	assert.Equal(t, created.PaymentID, ev.PaymentID)
	assert.Equal(t, 100.0, ev.Amount)
	assert.Equal(t, "USD", ev.Currency)
	assert.Equal(t, "ORDER-1", ev.OrderID)
	assert.Equal(t, *completed.CompletedAt, ev.Timestamp)
}

func TestComplete_NoWebhookURLNoEvent(t *testing.T) {
	svc, n := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.Complete(ctx, created.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, 0, n.count())
}

func TestComplete_ConcurrentRace(t *testing.T) {
	svc, n := newTestService()
	ctx := context.Background()

	in := validInput()
	in.WebhookURL = "https://merchant.example/hooks"

	// Two simultaneous completions of the same pending payment must
	// yield exactly one success and one already-completed error, and a
	// single webhook event.
	for i := 0; i < 50; i++ {
		created, err := svc.Create(ctx, in)
		require.NoError(t, err)

		before := n.count()
		errs := make(chan error, 2)
		var start sync.WaitGroup
		start.Add(1)
		for j := 0; j < 2; j++ {
			go func() {
				start.Wait()
				_, err := svc.Complete(ctx, created.PaymentID)
				errs <- err
			}()
		}
		start.Done()

		var successes, alreadyCompleted int
		for j := 0; j < 2; j++ {
			switch err := <-errs; {
			case err == nil:
				successes++
			case err == payment.ErrAlreadyCompleted:
				alreadyCompleted++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}

		require.Equal(t, 1, successes)
		require.Equal(t, 1, alreadyCompleted)
		require.Equal(t, before+1, n.count())
	}
}

func TestEndToEndScenario(t *testing.T) {
	svc, n := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, payment.CreateInput{
		Amount:        100,
		Currency:      "USD",
		CustomerEmail: "a@b.com",
		OrderID:       "ORDER-1",
		WebhookURL:    "https://merchant.example/hooks",
	})
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPending, created.Status)
	assert.Equal(t, 2.5, created.Fee)
	assert.Equal(t, 102.5, created.TotalAmount)

	completed, err := svc.Complete(ctx, created.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	require.Equal(t, 1, n.count())
	assert.Equal(t, 100.0, n.events[0].Amount)
	assert.Equal(t, "USD", n.events[0].Currency)
	assert.Equal(t, "ORDER-1", n.events[0].OrderID)
}
