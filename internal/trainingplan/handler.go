package trainingplan

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trainingplan_test

type coachClient interface {
	GetTrainingGoal(ctx context.Context, userID string) (*coachapi.TrainingGoal, error)
	SetTrainingGoal(ctx context.Context, userID string, goal coachapi.TrainingGoal) error
	DeleteTrainingGoal(ctx context.Context, userID string) error
	GetTrainingPlan(ctx context.Context, userID, lang string) (*coachapi.TrainingPlan, error)
	RefreshTrainingPlan(ctx context.Context, userID, lang string) (*coachapi.TrainingPlan, error)
}

type GoalSavedResponse struct {
	Goal    coachapi.TrainingGoal `json:"goal"`
	Message string                `json:"message"`
}

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
	router.HandleFunc("/training/goal", handler.HandleGetGoal).Methods(http.MethodGet).Name("training-goal-get")
	router.HandleFunc("/training/goal", handler.HandleSetGoal).Methods(http.MethodPut).Name("training-goal-set")
	router.HandleFunc("/training/goal", handler.HandleDeleteGoal).Methods(http.MethodDelete).Name("training-goal-delete")
	router.HandleFunc("/training/plan", handler.HandleGetPlan).Methods(http.MethodGet).Name("training-plan")
	router.HandleFunc("/training/plan/refresh", handler.HandleRefreshPlan).Methods(http.MethodPost).Name("training-plan-refresh")
}

func (handler *Handler) HandleGetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.getGoal")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	goal, err := handler.client.GetTrainingGoal(ctx, userID)
	if err != nil {
		if coachapi.IsNotFound(err) {
			// no goal set yet, the screen shows the setup form
			http.Error(w, "no goal set", http.StatusNotFound)
			return
		}
		log.Errorf("get training goal for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to get goal", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, goal)
}

func (handler *Handler) HandleSetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.setGoal")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	lang := handler.translator.FromRequest(r)

	var goal coachapi.TrainingGoal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Tracef("set training goal, unmarshal json params: %s", err)
		http.Error(w, "set goal failed", http.StatusBadRequest)
		return
	}

	if goal.Race == "" {
		pkg.WriteResponse(w, pkg.ContentType.JSON,
			errorJSON(handler.translator.T(lang, "goal.invalid")),
			http.StatusBadRequest,
		)
		return
	}

	if err := handler.client.SetTrainingGoal(ctx, userID, goal); err != nil {
		log.Errorf("set training goal for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to set goal", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, GoalSavedResponse{
		Goal:    goal,
		Message: handler.translator.T(lang, "goal.saved"),
	})
}

func (handler *Handler) HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.deleteGoal")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	lang := handler.translator.FromRequest(r)

	if err := handler.client.DeleteTrainingGoal(ctx, userID); err != nil {
		log.Errorf("delete training goal for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to delete goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, messageJSON(handler.translator.T(lang, "goal.deleted")))
}

func (handler *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.getPlan")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	plan, err := handler.client.GetTrainingPlan(ctx, userID, handler.translator.FromRequest(r))
	if err != nil {
		if coachapi.IsNotFound(err) {
			http.Error(w, "no plan yet", http.StatusNotFound)
			return
		}
		log.Errorf("get training plan for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to get plan", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, plan)
}

// HandleRefreshPlan asks the backend to rebuild the plan from the
// current goal and recent load, and returns the fresh plan in the same
// shape as HandleGetPlan so the screen can swap it in place.
func (handler *Handler) HandleRefreshPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.refreshPlan")
	defer span.End()

	userID := r.Header.Get("X-COACH-USER")
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	plan, err := handler.client.RefreshTrainingPlan(ctx, userID, handler.translator.FromRequest(r))
	if err != nil {
		if coachapi.IsNotFound(err) {
			// cannot build a plan without a goal
			http.Error(w, "no goal set", http.StatusNotFound)
			return
		}
		log.Errorf("refresh training plan for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, failed to refresh plan", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, plan)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v interface{}) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("trainingplan: marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func errorJSON(msg string) string {
	raw, _ := json.Marshal(map[string]string{"error": msg})
	return string(raw)
}

func messageJSON(msg string) string {
	raw, _ := json.Marshal(map[string]string{"message": msg})
	return string(raw)
}
