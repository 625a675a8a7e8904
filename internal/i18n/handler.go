package i18n

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/cardiocoach/webgateway/internal/telemetry/tracing"
	"github.com/cardiocoach/webgateway/pkg"
)

// Handler serves the language setting endpoints. Changing the language
// takes effect process-wide, every screen rendered afterwards uses it.
type Handler struct {
	translator *Translator
}

func NewHandler(translator *Translator) *Handler {
	return &Handler{translator: translator}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/settings/language", h.handleGet).Methods(http.MethodGet).Name("get-language")
	router.HandleFunc("/settings/language", h.handleSet).Methods(http.MethodPut).Name("set-language")
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "language.get")
	defer span.End()

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"lang":%q}`, h.translator.Default()))
}

type setLanguageRequest struct {
	Lang string `json:"lang"`
}

func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "language.set")
	defer span.End()

	var req setLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Lang == "" {
		http.Error(w, "error, lang missing", http.StatusBadRequest)
		return
	}

	if !Supported(req.Lang) {
		msg := h.translator.T(h.translator.Default(), "language.unsupported")
		pkg.WriteResponse(w, pkg.ContentType.JSON, fmt.Sprintf(`{"error":%q}`, msg), http.StatusBadRequest)
		return
	}

	lang := h.translator.SetDefault(req.Lang)
	log.Debugf("language switched to %s", lang)

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(
		`{"lang":%q,"message":%q}`,
		lang, h.translator.T(lang, "language.updated"),
	))
}
