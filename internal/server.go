package internal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/cardiocoach/webgateway/internal/chat"
	"github.com/cardiocoach/webgateway/internal/coachapi"
	"github.com/cardiocoach/webgateway/internal/config"
	"github.com/cardiocoach/webgateway/internal/dashboard"
	"github.com/cardiocoach/webgateway/internal/guidance"
	"github.com/cardiocoach/webgateway/internal/i18n"
	"github.com/cardiocoach/webgateway/internal/middleware"
	"github.com/cardiocoach/webgateway/internal/stravasync"
	"github.com/cardiocoach/webgateway/internal/subscription"
	"github.com/cardiocoach/webgateway/internal/telemetry/metrics"
	"github.com/cardiocoach/webgateway/internal/telemetry/tracing"
	"github.com/cardiocoach/webgateway/internal/trainingplan"
	"github.com/cardiocoach/webgateway/internal/workouts"
	"github.com/cardiocoach/webgateway/pkg"
)

type Server struct {
	httpServer            *http.Server
	metricsHttpServer     *http.Server
	browserRequestsSecret string // checked on every api request coming from the web ui
	versionInfo           string

	config      *config.Config
	coachClient *coachapi.Client
	translator  *i18n.Translator

	redisClient *redis.Client
	chatStore   *chat.Store

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	CoachAPIKey             string
	BrowserRequestsSecret   string
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("gateway", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, strconv.Itoa(params.Config.RedisPort)),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "coach-gateway", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	s := &Server{
		config:                params.Config,
		browserRequestsSecret: params.BrowserRequestsSecret,
		versionInfo:           params.VersionInfo,

		coachClient: coachapi.NewClient(params.Config.CoachAPIURL, params.CoachAPIKey, tracedHttpClient),
		translator:  i18n.NewTranslator(params.Config.DefaultLanguage),

		redisClient: rdb,
		chatStore:   chat.NewStore(rdb, time.Duration(params.Config.ChatSessionTTLMinutes)*time.Minute),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm CardioCoach Gateway, I'm OK 🫀")
	}).Methods("GET").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	apiRouter := r.PathPrefix("/api").Subrouter()

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	dashboardHandler := dashboard.NewHandler(s.coachClient, s.translator.Default, s.metricsManager)
	dashboardHandler.SetupRoutes(apiRouter)

	workoutsHandler := workouts.NewHandler(s.coachClient, s.translator.Default, s.metricsManager)
	workoutsHandler.SetupRoutes(apiRouter)

	chatHandler := chat.NewHandler(s.coachClient, s.chatStore, s.translator, s.metricsManager)
	chatHandler.SetupRoutes(apiRouter, reqRateLimiter, s.config.ChatSendRateLimitPerMin)

	checkoutPoller := subscription.NewPoller(
		s.coachClient,
		time.Duration(s.config.CheckoutPollIntervalSeconds)*time.Second,
		s.config.CheckoutPollMaxAttempts,
		s.metricsManager,
	)
	subscriptionHandler := subscription.NewHandler(s.coachClient, checkoutPoller, s.translator, s.metricsManager)
	subscriptionHandler.SetupRoutes(apiRouter, reqRateLimiter, s.config.CheckoutRateLimitPerMin)

	trainingHandler := trainingplan.NewHandler(s.coachClient, s.translator, s.metricsManager)
	trainingHandler.SetupRoutes(apiRouter)

	guidanceService := guidance.NewService(
		s.coachClient,
		s.config.GuidanceCacheSizeMB,
		s.config.GuidanceCacheTTLSeconds,
	)
	guidanceHandler := guidance.NewHandler(guidanceService, s.translator, s.metricsManager)
	guidanceHandler.SetupRoutes(apiRouter)

	stravaHandler := stravasync.NewHandler(s.coachClient, s.translator, s.metricsManager)
	stravaHandler.SetupRoutes(apiRouter)

	languageHandler := i18n.NewHandler(s.translator)
	languageHandler.SetupRoutes(apiRouter)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.browserRequestsSecret)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(
		s.config.PrometheusMetricsHost,
		strconv.Itoa(s.config.PrometheusMetricsPort),
	)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}
