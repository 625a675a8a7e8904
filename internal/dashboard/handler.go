package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/cardiocoach/webgateway/internal/coachapi"
	"github.com/cardiocoach/webgateway/internal/telemetry/metrics"
	"github.com/cardiocoach/webgateway/internal/telemetry/tracing"
	"github.com/cardiocoach/webgateway/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type coachClient interface {
	GetStats(ctx context.Context, userID, period string) (*coachapi.Stats, error)
	ListWorkouts(ctx context.Context, userID string, page, size int) (*coachapi.WorkoutsPage, error)
	GetDashboardInsight(ctx context.Context, userID, lang string) (*coachapi.Insight, error)
	GetVMAEstimate(ctx context.Context, userID string) (*coachapi.VMAEstimate, error)
}

const recentWorkoutsCount = 5

// Response carries every dashboard section in one payload. A section
// is null when its upstream call failed; the screen renders what it
// got and leaves the rest empty.
type Response struct {
	Stats          *coachapi.Stats       `json:"stats"`
	RecentWorkouts []coachapi.Workout    `json:"recentWorkouts"`
	Insight        *coachapi.Insight     `json:"insight"`
	VMA            *coachapi.VMAEstimate `json:"vma"`
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
	router.HandleFunc("/dashboard", handler.HandleDashboard).Methods(http.MethodGet).Name("dashboard")
}

// HandleDashboard fans out to every dashboard source in parallel. One
// slow or failing section must not blank the whole screen.
func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard")
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

	var (
		wg       sync.WaitGroup
		stats    *coachapi.Stats
		workouts *coachapi.WorkoutsPage
		insight  *coachapi.Insight
		vma      *coachapi.VMAEstimate
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		var err error
		if stats, err = handler.client.GetStats(ctx, userID, "week"); err != nil {
			log.Errorf("dashboard: stats for %s: %s", userID, err)
			handler.metrics.CounterUpstreamErrors.Inc()
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if workouts, err = handler.client.ListWorkouts(ctx, userID, 1, recentWorkoutsCount); err != nil {
			log.Errorf("dashboard: recent workouts for %s: %s", userID, err)
			handler.metrics.CounterUpstreamErrors.Inc()
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if insight, err = handler.client.GetDashboardInsight(ctx, userID, lang); err != nil {
			log.Errorf("dashboard: insight for %s: %s", userID, err)
			handler.metrics.CounterUpstreamErrors.Inc()
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if vma, err = handler.client.GetVMAEstimate(ctx, userID); err != nil {
			log.Errorf("dashboard: vma estimate for %s: %s", userID, err)
			handler.metrics.CounterUpstreamErrors.Inc()
		}
	}()
	wg.Wait()

	resp := Response{
		Stats:          stats,
		RecentWorkouts: []coachapi.Workout{},
		Insight:        insight,
		VMA:            vma,
	}
	if workouts != nil {
		resp.RecentWorkouts = workouts.Workouts
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("dashboard: marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
