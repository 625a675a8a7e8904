package integration_testing

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/cardiocoach/webgateway/internal"
	"github.com/cardiocoach/webgateway/internal/config"
)

const (
	serverPort        = 9000
	serverHost        = "localhost"
	testBrowserSecret = "test"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

func getTestConfig(redisPort int, coachAPIURL string) *config.Config {
	return &config.Config{
		Host:                        serverHost,
		Port:                        serverPort,
		CoachAPIURL:                 coachAPIURL,
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PrometheusMetricsHost:       "localhost",
		PrometheusMetricsPort:       9001,
		ChatSessionTTLMinutes:       120,
		ChatSendRateLimitPerMin:     100,
		GuidanceCacheSizeMB:         1,
		GuidanceCacheTTLSeconds:     60,
		CheckoutPollIntervalSeconds: 1,
		CheckoutPollMaxAttempts:     2,
		CheckoutRateLimitPerMin:     100,
		DefaultLanguage:             "fr",
	}
}

// fakeCoachBackend fakes the coaching api endpoints the gateway talks
// to, with static but realistic payloads.
func fakeCoachBackend() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"period": "week",
			"total_workouts": 4,
			"total_distance_km": 38.5,
			"total_duration_minutes": 210,
			"avg_pace_min_km": 5.45,
			"weekly_load": 320,
			"load_ratio": 1.1
		}`)
	})

	mux.HandleFunc("/api/workouts", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"workouts": [{
				"id": "w-1",
				"type": "easy_run",
				"date": "2025-11-03T18:00:00Z",
				"distance_km": 8.2,
				"duration_minutes": 45,
				"pace_min_km": 5.49,
				"speed_kmh": 10.9,
				"elevation_gain_m": 60,
				"effort_zone_distribution": {"z1": 10, "z2": 70, "z3": 15, "z4": 5, "z5": 0}
			}],
			"total": 1
		}`)
	})

	mux.HandleFunc("/api/insight", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"text": "Belle régularité cette semaine.", "tone": "positive"}`)
	})

	mux.HandleFunc("/api/vma", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"vma_kmh": 16.5, "vo2max": 57.8, "confidence": 0.8, "estimated_at": "2025-11-01T10:00:00Z"}`)
	})

	mux.HandleFunc("/api/subscription/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"tier": "free", "remaining_messages": 10}`)
	})

	mux.HandleFunc("/api/chat/history", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	mux.HandleFunc("/api/coach/guidance", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"week": 3,
			"phase": "base",
			"risk_level": "low",
			"summary": "Charge stable.",
			"recommendation": "Ajoute une séance de seuil."
		}`)
	})

	return httptest.NewServer(mux)
}

func redisSetup(pool *dockertest.Pool) (int, func(), error) {
	redisResource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return 0, nil, fmt.Errorf("run redis: %s", err)
	}

	redisPort, err := strconv.Atoi(redisResource.GetPort("6379/tcp"))
	if err != nil {
		redisResource.Close()
		return 0, nil, fmt.Errorf("parse redis port: %s", err)
	}

	return redisPort, func() {
		redisResource.Close()
	}, nil
}

func serverSetup(ctx context.Context) (*internal.Server, func(), error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, fmt.Errorf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = pool.Client.Ping(); err != nil {
		return nil, nil, fmt.Errorf("could not ping dockertest pool: %s", err)
	}

	redisPort, redisCleanup, err := redisSetup(pool)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup redis: %s", err.Error())
	}

	coachBackend := fakeCoachBackend()

	cfg := getTestConfig(redisPort, coachBackend.URL)
	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			CoachAPIKey:             "test",
			BrowserRequestsSecret:   testBrowserSecret,
			VersionInfo:             "test-version-info",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		redisCleanup()
		coachBackend.Close()
		return nil, nil, err
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	return server, func() {
		redisCleanup()
		coachBackend.Close()
		server.GracefulShutdown()
	}, nil
}

// waitForServer waits until the root endpoint starts responding.
func waitForServer() error {
	for i := 0; i < 50; i++ {
		resp, err := http.Get(serverEndpoint + "/")
		if err == nil {
			resp.Body.Close()
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("server did not come up on %s", serverEndpoint)
}
