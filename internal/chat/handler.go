package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=chat_test

type coachClient interface {
	SubscriptionStatus(ctx context.Context, userID string) (*coachapi.SubscriptionStatus, error)
	ChatHistory(ctx context.Context, userID string) ([]coachapi.ChatMessage, error)
	SendChatMessage(ctx context.Context, userID, lang, content string) (*coachapi.ChatMessage, error)
	ClearChatHistory(ctx context.Context, userID string) error
}

// progress step per model status poll, in percent
const modelProgressStep = 20

type OpenResponse struct {
	Messages       []coachapi.ChatMessage `json:"messages"`
	RemainingQuota int                    `json:"remainingQuota"`
	Tier           string                 `json:"tier"`
}

type SendResponse struct {
	UserMessage    coachapi.ChatMessage `json:"userMessage"`
	Reply          coachapi.ChatMessage `json:"reply"`
	RemainingQuota int                  `json:"remainingQuota"`
}

type HistoryResponse struct {
	Messages []coachapi.ChatMessage `json:"messages"`
}

type ModelStatusResponse struct {
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

type Handler struct {
	client     coachClient
	store      *Store
	translator *i18n.Translator
	metrics    *metrics.Manager
}

func NewHandler(
	client coachClient,
	store *Store,
	translator *i18n.Translator,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		client:     client,
		store:      store,
		translator: translator,
		metrics:    metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	sendAllowedPerMin int,
) {
	router.HandleFunc("/chat/open", handler.HandleOpen).Methods(http.MethodGet).Name("chat-open")
	router.HandleFunc("/chat/history", handler.HandleHistory).Methods(http.MethodGet).Name("chat-history")
	router.HandleFunc("/chat/history", handler.HandleClear).Methods(http.MethodDelete).Name("chat-clear")
	router.HandleFunc("/chat/model/status", handler.HandleModelStatus).Methods(http.MethodGet).Name("chat-model-status")

	// rate limit sending to keep the llm bill sane
	rateLimitSend := middleware.RateLimit(rateLimiter, "chat-send", sendAllowedPerMin, handler.metrics)
	router.Handle("/chat/message", rateLimitSend(http.HandlerFunc(handler.HandleSend))).
		Methods(http.MethodPost).Name("chat-send")
}

// HandleOpen prepares everything the chat screen needs in one round
// trip: the transcript and the remaining message quota. Fresh sessions
// are seeded from the backend; an existing session keeps its local
// quota mirror so the counter does not jump around between sends.
func (handler *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.open")
	defer span.End()

	userID := userIDFromRequest(r)
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	session, err := handler.store.Get(ctx, userID)
	if err != nil {
		log.Errorf("chat open: get session for %s: %s", userID, err)
		session = &Session{}
	}

	var (
		wg         sync.WaitGroup
		subStatus  *coachapi.SubscriptionStatus
		subErr     error
		history    []coachapi.ChatMessage
		historyErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		subStatus, subErr = handler.client.SubscriptionStatus(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		history, historyErr = handler.client.ChatHistory(ctx, userID)
	}()
	wg.Wait()

	tier := "free"
	if subErr != nil {
		log.Errorf("chat open: subscription status for %s: %s", userID, subErr)
		handler.metrics.CounterUpstreamErrors.Inc()
	} else {
		tier = subStatus.Tier
		if !session.QuotaSeeded {
			session.RemainingQuota = subStatus.Remaining
			session.QuotaSeeded = true
		}
	}

	if historyErr != nil {
		log.Errorf("chat open: history for %s: %s", userID, historyErr)
		handler.metrics.CounterUpstreamErrors.Inc()
	} else if len(session.Transcript) == 0 {
		session.Transcript = history
	}

	if err := handler.store.Save(ctx, userID, session); err != nil {
		log.Errorf("chat open: save session for %s: %s", userID, err)
	}

	handler.writeJSON(w, OpenResponse{
		Messages:       session.Transcript,
		RemainingQuota: session.RemainingQuota,
		Tier:           tier,
	})
}

type sendRequest struct {
	Content string `json:"content"`
}

// HandleSend runs one chat turn. The user message is appended to the
// session before the backend call so a refresh mid-send still shows
// it; a failed send becomes a synthetic error entry in the transcript
// instead of an HTTP error, since the browser already rendered the
// user message.
func (handler *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.send")
	defer span.End()

	userID := userIDFromRequest(r)
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
		http.Error(w, "error, content empty", http.StatusBadRequest)
		return
	}

	lang := handler.translator.FromRequest(r)

	acquired, err := handler.store.AcquireSend(ctx, userID)
	if err != nil {
		log.Errorf("chat send: acquire lock for %s: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !acquired {
		span.SetStatus(codes.Error, "send-in-flight")
		pkg.WriteResponse(w, pkg.ContentType.JSON,
			errorJSON(handler.translator.T(lang, "chat.sending")),
			http.StatusConflict,
		)
		return
	}
	defer handler.store.ReleaseSend(ctx, userID)

	session, err := handler.store.Get(ctx, userID)
	if err != nil {
		log.Errorf("chat send: get session for %s: %s", userID, err)
		session = &Session{}
	}

	if session.QuotaSeeded && session.RemainingQuota <= 0 {
		handler.metrics.CounterChatLimitHits.Inc()
		span.SetStatus(codes.Error, "quota-exhausted")
		pkg.WriteResponse(w, pkg.ContentType.JSON,
			errorJSON(handler.translator.T(lang, "chat.limit_reached")),
			http.StatusForbidden,
		)
		return
	}

	userMessage := coachapi.ChatMessage{
		ID:        uuid.NewString(),
		Role:      coachapi.RoleUser,
		Content:   req.Content,
		Timestamp: time.Now(),
		Pending:   true,
	}
	session.Transcript = append(session.Transcript, userMessage)

	reply, err := handler.client.SendChatMessage(ctx, userID, lang, req.Content)
	if err != nil {
		log.Errorf("chat send: upstream for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		span.SetStatus(codes.Error, err.Error())

		errorEntry := coachapi.ChatMessage{
			ID:        uuid.NewString(),
			Role:      coachapi.RoleAssistant,
			Content:   handler.translator.T(lang, "chat.send_failed"),
			Timestamp: time.Now(),
			Error:     true,
		}
		session.Transcript[len(session.Transcript)-1].Pending = false
		session.Transcript = append(session.Transcript, errorEntry)
		if saveErr := handler.store.Save(ctx, userID, session); saveErr != nil {
			log.Errorf("chat send: save session for %s: %s", userID, saveErr)
		}

		handler.writeJSON(w, SendResponse{
			UserMessage:    session.Transcript[len(session.Transcript)-2],
			Reply:          errorEntry,
			RemainingQuota: session.RemainingQuota,
		})
		return
	}

	handler.metrics.CounterChatMessages.Inc()

	session.Transcript[len(session.Transcript)-1].Pending = false
	session.Transcript = append(session.Transcript, *reply)
	if session.QuotaSeeded && session.RemainingQuota > 0 {
		session.RemainingQuota--
	}
	if err := handler.store.Save(ctx, userID, session); err != nil {
		log.Errorf("chat send: save session for %s: %s", userID, err)
	}

	handler.writeJSON(w, SendResponse{
		UserMessage:    session.Transcript[len(session.Transcript)-2],
		Reply:          *reply,
		RemainingQuota: session.RemainingQuota,
	})
}

// HandleHistory returns the backend transcript. A backend hiccup
// degrades to an empty list so the chat screen still renders.
func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.history")
	defer span.End()

	userID := userIDFromRequest(r)
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	history, err := handler.client.ChatHistory(ctx, userID)
	if err != nil {
		log.Errorf("chat history for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		history = []coachapi.ChatMessage{}
	}

	handler.writeJSON(w, HistoryResponse{Messages: history})
}

func (handler *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.clear")
	defer span.End()

	userID := userIDFromRequest(r)
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	if err := handler.client.ClearChatHistory(ctx, userID); err != nil {
		log.Errorf("chat clear for %s: %s", userID, err)
		handler.metrics.CounterUpstreamErrors.Inc()
		http.Error(w, "error, failed to clear chat history", http.StatusInternalServerError)
		return
	}

	if err := handler.store.Delete(ctx, userID); err != nil {
		log.Errorf("chat clear: delete session for %s: %s", userID, err)
	}

	pkg.WriteTextResponseOK(w, "cleared")
}

// HandleModelStatus simulates the on-device model download used by the
// offline chat mode. Each poll advances the progress by a fixed step
// until it reaches 100 and the status flips to ready.
func (handler *Handler) HandleModelStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.modelStatus")
	defer span.End()

	userID := userIDFromRequest(r)
	if userID == "" {
		http.Error(w, "error, user missing", http.StatusBadRequest)
		return
	}

	session, err := handler.store.Get(ctx, userID)
	if err != nil {
		log.Errorf("chat model status: get session for %s: %s", userID, err)
		session = &Session{}
	}

	if session.ModelProgress < 100 {
		session.ModelProgress += modelProgressStep
		if session.ModelProgress > 100 {
			session.ModelProgress = 100
		}
		if err := handler.store.Save(ctx, userID, session); err != nil {
			log.Errorf("chat model status: save session for %s: %s", userID, err)
		}
	}

	status := "downloading"
	if session.ModelProgress >= 100 {
		status = "ready"
	}

	handler.writeJSON(w, ModelStatusResponse{
		Status:   status,
		Progress: session.ModelProgress,
	})
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v interface{}) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("chat: marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func userIDFromRequest(r *http.Request) string {
	return r.Header.Get("X-COACH-USER")
}

func errorJSON(msg string) string {
	raw, _ := json.Marshal(map[string]string{"error": msg})
	return string(raw)
}
