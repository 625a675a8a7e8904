package workouts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/cardiocoach/webgateway/internal/coachapi"
	"github.com/cardiocoach/webgateway/internal/telemetry/metrics"
	"github.com/cardiocoach/webgateway/internal/telemetry/tracing"
	"github.com/cardiocoach/webgateway/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type coachClient interface {
	ListWorkouts(ctx context.Context, userID string, page, size int) (*coachapi.WorkoutsPage, error)
	GetWorkout(ctx context.Context, userID, workoutID string) (*coachapi.Workout, error)
	GetWorkoutAnalysis(ctx context.Context, userID, workoutID, lang string) (*coachapi.WorkoutAnalysis, error)
	GetStats(ctx context.Context, userID, period string) (*coachapi.Stats, error)
	GetVMAEstimate(ctx context.Context, userID string) (*coachapi.VMAEstimate, error)
}

const (
	defaultPage = 1
	defaultSize = 20
	maxSize     = 100
)

type ListResponse struct {
	Workouts []coachapi.Workout `json:"workouts"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	Size     int                `json:"size"`
}

type Handler struct {
	client      coachClient
	defaultLang func() string
	metrics     *metrics.Manager
}

func NewHandler(client coachClient, defaultLang func() string, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		client:      client,
		defaultLang: defaultLang,
		metrics:     metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts", handler.HandleList).Methods(http.MethodGet).Name("workouts-list")
	router.HandleFunc("/workouts/{id}", handler.HandleGet).Methods(http.MethodGet).Name("workouts-get")
	router.HandleFunc("/workouts/{id}/analysis", handler.HandleAnalysis).Methods(http.MethodGet).Name("workouts-analysis")
	router.HandleFunc("/stats", handler.HandleStats).Methods(http.MethodGet).Name("stats")
	router.HandleFunc("/vma", handler.HandleVMA).Methods(http.MethodGet).Name("vma")
}

// HandleList returns a workout page. An upstream failure degrades to
// an empty list so the history screen renders its empty state instead
// of an error page.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	page := intQueryParam(r, "page", defaultPage)
	size := intQueryParam(r, "size", defaultSize)
	if page < 1 {
		page = defaultPage
	}
	if size < 1 || size > maxSize {
		size = defaultSize
	}

	resp := ListResponse{
		Workouts: []coachapi.Workout{},
		Page:     page,
		Size:     size,
	}

	workoutsPage, err := handler.client.ListWorkouts(ctx, userID, page, size)
	if err != nil {
		log.Errorf("list workouts for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
	} else {
		resp.Workouts = workoutsPage.Workouts
		resp.Total = workoutsPage.Total
	}

	handler.writeJSON(w, resp)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	workoutID := mux.Vars(r)["id"]
	workout, err := handler.client.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		if coachapi.IsNotFound(err) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout %s for %s: %s", workoutID, userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to get workout", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, workout)
}

func (handler *Handler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.analysis")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = handler.defaultLang()
	}

	workoutID := mux.Vars(r)["id"]
	analysis, err := handler.client.GetWorkoutAnalysis(ctx, userID, workoutID, lang)
	if err != nil {
		if coachapi.IsNotFound(err) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("workout analysis %s for %s: %s", workoutID, userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to get workout analysis", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, analysis)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.stats")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = "week"
	}

	stats, err := handler.client.GetStats(ctx, userID, period)
	if err != nil {
		log.Errorf("stats (%s) for %s: %s", period, userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to get stats", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, stats)
}

func (handler *Handler) HandleVMA(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.vma")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	estimate, err := handler.client.GetVMAEstimate(ctx, userID)
	if err != nil {
		if coachapi.IsNotFound(err) {
			// not enough workouts yet for an estimate
			http.Error(w, "no estimate available", http.StatusNotFound)
			return
		}
		log.Errorf("vma estimate for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to get vma estimate", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, estimate)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v interface{}) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("workouts: marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func intQueryParam(r *http.Request, name string, defaultValue int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
