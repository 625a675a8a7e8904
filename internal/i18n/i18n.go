package i18n

import (
	"net/http"
	"sync"

	"golang.org/x/text/language"
)

// Supported UI languages. French is the product's home market and the
// fallback for everything the catalog does not cover.
var (
	French  = language.French
	English = language.English

	supported = []language.Tag{French, English}
	matcher   = language.NewMatcher(supported)
)

var messages = map[string]map[string]string{
	"fr": {
		"chat.limit_reached":    "Tu as atteint ta limite de messages pour ce mois. Passe à l'offre supérieure pour continuer à discuter avec ton coach.",
		"chat.send_failed":      "Oups, je n'ai pas réussi à répondre. Réessaie dans un instant.",
		"chat.sending":          "Un message est déjà en cours d'envoi.",
		"checkout.pending":      "Paiement en cours de confirmation. Ton abonnement sera activé dès que le paiement est validé.",
		"checkout.completed":    "Abonnement activé, bon entraînement !",
		"checkout.failed":       "Le paiement n'a pas abouti. Aucun montant n'a été prélevé.",
		"goal.saved":            "Objectif enregistré.",
		"goal.deleted":          "Objectif supprimé.",
		"goal.invalid":          "L'objectif ne peut pas être vide.",
		"strava.disconnected":   "Compte Strava déconnecté.",
		"strava.sync_started":   "Synchronisation lancée.",
		"language.updated":      "Langue mise à jour.",
		"language.unsupported":  "Langue non prise en charge.",
		"upstream.unavailable":  "Le service coach est momentanément indisponible.",
		"subscription.required": "Cette fonctionnalité nécessite un abonnement actif.",
	},
	"en": {
		"chat.limit_reached":    "You have reached your message limit for this month. Upgrade your plan to keep chatting with your coach.",
		"chat.send_failed":      "Oops, I could not come up with a reply. Please try again in a moment.",
		"chat.sending":          "A message is already being sent.",
		"checkout.pending":      "Payment is being confirmed. Your subscription will activate as soon as it clears.",
		"checkout.completed":    "Subscription activated, happy training!",
		"checkout.failed":       "The payment did not go through. You have not been charged.",
		"goal.saved":            "Goal saved.",
		"goal.deleted":          "Goal deleted.",
		"goal.invalid":          "The goal cannot be empty.",
		"strava.disconnected":   "Strava account disconnected.",
		"strava.sync_started":   "Sync started.",
		"language.updated":      "Language updated.",
		"language.unsupported":  "Unsupported language.",
		"upstream.unavailable":  "The coach service is temporarily unavailable.",
		"subscription.required": "This feature requires an active subscription.",
	},
}

// Translator holds the process-wide default language. The default is
// shared by every request that does not carry its own language hint,
// so reads vastly outnumber writes.
type Translator struct {
	mu         sync.RWMutex
	defaultTag language.Tag
}

func NewTranslator(defaultLang string) *Translator {
	t := &Translator{defaultTag: French}
	if defaultLang != "" {
		t.SetDefault(defaultLang)
	}
	return t
}

// Default returns the current process-wide language code, e.g. "fr".
func (t *Translator) Default() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return tagCode(t.defaultTag)
}

// SetDefault switches the process-wide language. Unknown codes are
// matched to the closest supported language, so "en-US" lands on "en"
// and garbage falls back to French.
func (t *Translator) SetDefault(lang string) string {
	tag, _ := language.MatchStrings(matcher, lang)
	t.mu.Lock()
	t.defaultTag = tag
	t.mu.Unlock()
	return tagCode(tag)
}

// Supported reports whether lang names one of the catalog languages
// without fuzzy matching.
func Supported(lang string) bool {
	_, ok := messages[lang]
	return ok
}

// FromRequest resolves the language for a single request: an explicit
// ?lang= wins, then Accept-Language, then the process default.
func (t *Translator) FromRequest(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		tag, _ := language.MatchStrings(matcher, lang)
		return tagCode(tag)
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		tag, _ := language.MatchStrings(matcher, accept)
		return tagCode(tag)
	}
	return t.Default()
}

// T looks up a catalog message. Missing keys fall back to French, then
// to the key itself so a broken catalog stays debuggable.
func (t *Translator) T(lang, key string) string {
	if msg, ok := messages[lang][key]; ok {
		return msg
	}
	if msg, ok := messages["fr"][key]; ok {
		return msg
	}
	return key
}

func tagCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
