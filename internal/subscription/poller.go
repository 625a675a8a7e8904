package subscription

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/cardiocoach/webgateway/internal/coachapi"
	"github.com/cardiocoach/webgateway/internal/telemetry/metrics"
)

type checkoutStatusClient interface {
	CheckoutStatus(ctx context.Context, userID, sessionID string) (*coachapi.CheckoutStatus, error)
}

// Poller confirms a payment by polling the backend checkout status a
// bounded number of times at a fixed interval. No backoff: the payment
// provider redirect lands here seconds after the charge, so either the
// status flips to completed quickly or we report pending and let the
// subscription screen show the waiting state.
type Poller struct {
	client      checkoutStatusClient
	interval    time.Duration
	maxAttempts int
	metrics     *metrics.Manager
}

func NewPoller(
	client checkoutStatusClient,
	interval time.Duration,
	maxAttempts int,
	metricsManager *metrics.Manager,
) *Poller {
	return &Poller{
		client:      client,
		interval:    interval,
		maxAttempts: maxAttempts,
		metrics:     metricsManager,
	}
}

// Poll returns the checkout status, polling until it reaches completed
// or the attempts run out. Errors and non-terminal statuses count as
// attempts. On exhaustion it gives up silently and reports pending.
// Context cancellation aborts the wait between attempts.
func (p *Poller) Poll(ctx context.Context, userID, sessionID string) string {
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		p.metrics.CounterCheckoutPolls.Inc()

		status, err := p.client.CheckoutStatus(ctx, userID, sessionID)
		if err != nil {
			log.Errorf("checkout poll %d/%d for session %s: %s", attempt, p.maxAttempts, sessionID, err)
			p.metrics.CounterUpstreamErrors.Inc()
		} else if status.Status == coachapi.CheckoutCompleted {
			return coachapi.CheckoutCompleted
		}

		if attempt == p.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return coachapi.CheckoutPending
		case <-time.After(p.interval):
		}
	}

	log.Debugf("checkout poll for session %s exhausted after %d attempts", sessionID, p.maxAttempts)
	return coachapi.CheckoutPending
}
