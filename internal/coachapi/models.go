package coachapi

import "time"

// Workout is a single recorded session, as produced by the coaching
// backend. The gateway never mutates workouts.
type Workout struct {
	ID             string           `json:"id"`
	Type           string           `json:"type"`
	Date           time.Time        `json:"date"`
	DistanceKm     float64          `json:"distance_km"`
	DurationMin    int              `json:"duration_minutes"`
	AvgHeartRate   *int             `json:"avg_heart_rate,omitempty"`
	MaxHeartRate   *int             `json:"max_heart_rate,omitempty"`
	PaceMinKm      float64          `json:"pace_min_km"`
	SpeedKmh       float64          `json:"speed_kmh"`
	ElevationGainM float64          `json:"elevation_gain_m"`
	Zones          ZoneDistribution `json:"effort_zone_distribution"`
	Notes          string           `json:"notes,omitempty"`
}

// ZoneDistribution is the percentage of workout time spent in each
// heart-rate intensity band.
type ZoneDistribution struct {
	Z1 float64 `json:"z1"`
	Z2 float64 `json:"z2"`
	Z3 float64 `json:"z3"`
	Z4 float64 `json:"z4"`
	Z5 float64 `json:"z5"`
}

type WorkoutsPage struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

// Stats are backend-aggregated training statistics for a period.
type Stats struct {
	Period           string  `json:"period"`
	TotalWorkouts    int     `json:"total_workouts"`
	TotalDistanceKm  float64 `json:"total_distance_km"`
	TotalDurationMin int     `json:"total_duration_minutes"`
	AvgPaceMinKm     float64 `json:"avg_pace_min_km"`
	WeeklyLoad       float64 `json:"weekly_load"`
	LoadRatio        float64 `json:"load_ratio"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry of the coach conversation. User messages are
// appended optimistically by the gateway before the backend confirms them
// (Pending), and failed sends leave a synthetic assistant entry behind
// (Error) instead of discarding the user's input.
type ChatMessage struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Pending     bool      `json:"pending,omitempty"`
	Error       bool      `json:"error,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// SubscriptionStatus mirrors the backend-computed message quota state.
type SubscriptionStatus struct {
	Tier         string     `json:"tier"`
	MessageQuota int        `json:"message_quota"`
	Remaining    int        `json:"remaining"`
	RenewsAt     *time.Time `json:"renews_at,omitempty"`
}

type CheckoutSession struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

const (
	CheckoutPending   = "pending"
	CheckoutCompleted = "completed"
	CheckoutFailed    = "failed"
)

type CheckoutStatus struct {
	Status string `json:"status"`
}

type TrainingGoal struct {
	Race           string     `json:"race"`
	TargetTime     string     `json:"target_time"`
	WeeklySessions int        `json:"weekly_sessions"`
	TargetDate     *time.Time `json:"target_date,omitempty"`
}

type PlanSession struct {
	Day         string  `json:"day"`
	Type        string  `json:"type"`
	DistanceKm  float64 `json:"distance_km"`
	Description string  `json:"description"`
}

type PlanWeek struct {
	Week       int           `json:"week"`
	Phase      string        `json:"phase"`
	TargetKm   float64       `json:"target_km"`
	TargetLoad int           `json:"target_load"`
	Sessions   []PlanSession `json:"sessions"`
}

type TrainingPlan struct {
	Goal        *TrainingGoal `json:"goal,omitempty"`
	Weeks       []PlanWeek    `json:"weeks"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// Guidance is the coach's current-week recommendation.
type Guidance struct {
	Week           int    `json:"week"`
	Phase          string `json:"phase"`
	RiskLevel      string `json:"risk_level"`
	Summary        string `json:"summary"`
	Recommendation string `json:"recommendation"`
}

// Digest is the backend-generated weekly natural-language review.
type Digest struct {
	WeekStart time.Time `json:"week_start"`
	Summary   string    `json:"summary"`
	TotalKm   float64   `json:"total_km"`
	Workouts  int       `json:"workouts"`
	UsedLLM   bool      `json:"used_llm"`
}

type VMAEstimate struct {
	VMAKmh      float64   `json:"vma_kmh"`
	VO2Max      float64   `json:"vo2max"`
	Confidence  string    `json:"confidence"`
	EstimatedAt time.Time `json:"estimated_at"`
}

// Insight is the short dashboard one-liner about the current week.
type Insight struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

type WorkoutAnalysis struct {
	WorkoutID    string   `json:"workout_id"`
	Summary      string   `json:"summary"`
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
	UsedLLM      bool     `json:"used_llm"`
}

type StravaConnect struct {
	AuthorizeURL string `json:"authorize_url"`
}

type StravaStatus struct {
	Connected  bool       `json:"connected"`
	Athlete    string     `json:"athlete,omitempty"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
}

type SyncResult struct {
	NewWorkouts int       `json:"new_workouts"`
	SyncedAt    time.Time `json:"synced_at"`
}
