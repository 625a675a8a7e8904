package subscription

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/cardiocoach/webgateway/internal/coachapi"
	"github.com/cardiocoach/webgateway/internal/i18n"
	"github.com/cardiocoach/webgateway/internal/middleware"
	"github.com/cardiocoach/webgateway/internal/telemetry/metrics"
	"github.com/cardiocoach/webgateway/internal/telemetry/tracing"
	"github.com/cardiocoach/webgateway/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=subscription_test

type subscriptionClient interface {
	SubscriptionStatus(ctx context.Context, userID string) (*coachapi.SubscriptionStatus, error)
	CreateCheckout(ctx context.Context, userID, tier string) (*coachapi.CheckoutSession, error)
	CheckoutStatus(ctx context.Context, userID, sessionID string) (*coachapi.CheckoutStatus, error)
}

var allowedTiers = map[string]bool{
	"premium": true,
	"elite":   true,
}

type CompleteResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Handler struct {
	client     subscriptionClient
	poller     *Poller
	translator *i18n.Translator
	metrics    *metrics.Manager
}

func NewHandler(
	client subscriptionClient,
	poller *Poller,
	translator *i18n.Translator,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		client:     client,
		poller:     poller,
		translator: translator,
		metrics:    metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	checkoutAllowedPerMin int,
) {
	router.HandleFunc("/subscription/status", handler.HandleStatus).Methods(http.MethodGet).Name("subscription-status")
	router.HandleFunc("/subscription/checkout/complete", handler.HandleCheckoutComplete).Methods(http.MethodGet).Name("subscription-checkout-complete")

	// rate limit checkout creation to prevent session spamming
	rateLimitCheckout := middleware.RateLimit(rateLimiter, "subscription-checkout", checkoutAllowedPerMin, handler.metrics)
	router.Handle("/subscription/checkout", rateLimitCheckout(http.HandlerFunc(handler.HandleCheckout))).
		Methods(http.MethodPost).Name("subscription-checkout")
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.subscription.status")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	status, err := handler.client.SubscriptionStatus(ctx, userID)
	if err != nil {
		log.Errorf("subscription status for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to get subscription status", http.StatusInternalServerError)
		return
	}

	statusJson, err := json.Marshal(status)
	if err != nil {
		log.Errorf("subscription status: marshal: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statusJson)
}

type checkoutRequest struct {
	Tier string `json:"tier"`
}

func (handler *Handler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.subscription.checkout")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Tier == "" {
		http.Error(w, "error, tier missing", http.StatusBadRequest)
		return
	}
	if !allowedTiers[req.Tier] {
		http.Error(w, "error, unknown tier", http.StatusBadRequest)
		return
	}

	session, err := handler.client.CreateCheckout(ctx, userID, req.Tier)
	if err != nil {
		log.Errorf("create checkout for %s, tier %s: %s", userID, req.Tier, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to create checkout", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("create checkout: marshal: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Debugf("checkout session %s created for %s", session.SessionID, userID)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, sessionJson)
}

// HandleCheckoutComplete is where the payment provider redirect lands.
// It polls the backend until the payment confirms or the attempts run
// out, then answers 200 either way; the subscription screen renders
// pending as "still confirming".
func (handler *Handler) HandleCheckoutComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.subscription.checkoutComplete")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "error, session missing", http.StatusBadRequest)
		return
	}

	lang := handler.translator.FromRequest(r)
	status := handler.poller.Poll(ctx, userID, sessionID)

	messageKey := "checkout.pending"
	if status == coachapi.CheckoutCompleted {
		messageKey = "checkout.completed"
	}

	respJson, err := json.Marshal(CompleteResponse{
		Status:  status,
		Message: handler.translator.T(lang, messageKey),
	})
	if err != nil {
		log.Errorf("checkout complete: marshal: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
