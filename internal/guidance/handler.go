package guidance

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/cardiocoach/webgateway/internal/i18n"
	"github.com/cardiocoach/webgateway/internal/telemetry/metrics"
	"github.com/cardiocoach/webgateway/internal/telemetry/tracing"
	"github.com/cardiocoach/webgateway/pkg"
)

type Handler struct {
	service    *Service
	translator *i18n.Translator
	metrics    *metrics.Manager
}

func NewHandler(service *Service, translator *i18n.Translator, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:    service,
		translator: translator,
		metrics:    metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/coach/guidance", handler.HandleGuidance).Methods(http.MethodGet).Name("coach-guidance")
	router.HandleFunc("/coach/digest", handler.HandleDigest).Methods(http.MethodGet).Name("coach-digest")
}

func (handler *Handler) HandleGuidance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.guidance")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	guidance, err := handler.service.Guidance(ctx, userID, handler.translator.FromRequest(r))
	if err != nil {
		log.Errorf("guidance for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to get guidance", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, guidance)
}

func (handler *Handler) HandleDigest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.guidance.digest")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	digest, err := handler.service.WeeklyDigest(ctx, userID, handler.translator.FromRequest(r))
	if err != nil {
		log.Errorf("weekly digest for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to get weekly digest", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, digest)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v interface{}) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("guidance: marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
