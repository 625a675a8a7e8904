package stravasync

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/cardiocoach/webgateway/internal/coachapi"
	"github.com/cardiocoach/webgateway/internal/i18n"
	"github.com/cardiocoach/webgateway/internal/telemetry/metrics"
	"github.com/cardiocoach/webgateway/internal/telemetry/tracing"
	"github.com/cardiocoach/webgateway/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stravasync_test

type coachClient interface {
	StartStravaConnect(ctx context.Context, userID string) (*coachapi.StravaConnect, error)
	GetStravaStatus(ctx context.Context, userID string) (*coachapi.StravaStatus, error)
	TriggerStravaSync(ctx context.Context, userID string) (*coachapi.SyncResult, error)
	DisconnectStrava(ctx context.Context, userID string) error
}

// Handler forwards the sync-settings screen to the backend, which owns
// the whole Strava OAuth dance and the activity import. No tokens or
// Strava payloads pass through the gateway.
type Handler struct {
	client     coachClient
	translator *i18n.Translator
	metrics    *metrics.Manager
}

func NewHandler(client coachClient, translator *i18n.Translator, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		client:     client,
		translator: translator,
		metrics:    metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/strava/connect", handler.HandleConnect).Methods(http.MethodPost).Name("strava-connect")
	router.HandleFunc("/strava/status", handler.HandleStatus).Methods(http.MethodGet).Name("strava-status")
	router.HandleFunc("/strava/sync", handler.HandleSync).Methods(http.MethodPost).Name("strava-sync")
	router.HandleFunc("/strava/connection", handler.HandleDisconnect).Methods(http.MethodDelete).Name("strava-disconnect")
}

func (handler *Handler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strava.connect")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	connect, err := handler.client.StartStravaConnect(ctx, userID)
	if err != nil {
		log.Errorf("strava connect for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to start strava connect", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, connect)
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strava.status")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	status, err := handler.client.GetStravaStatus(ctx, userID)
	if err != nil {
		log.Errorf("strava status for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to get strava status", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, status)
}

func (handler *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strava.sync")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	result, err := handler.client.TriggerStravaSync(ctx, userID)
	if err != nil {
		log.Errorf("strava sync for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to trigger sync", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterStravaSyncs.Inc()
	log.Debugf("strava sync for %s: %d new workouts", userID, result.NewWorkouts)
	handler.writeJSON(w, result)
}

func (handler *Handler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strava.disconnect")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	if err := handler.client.DisconnectStrava(ctx, userID); err != nil {
		log.Errorf("strava disconnect for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to disconnect strava", http.StatusInternalServerError)
		return
	}

	lang := handler.translator.FromRequest(r)
	raw, _ := json.Marshal(map[string]string{"message": handler.translator.T(lang, "strava.disconnected")})
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, raw)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v interface{}) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("stravasync: marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
