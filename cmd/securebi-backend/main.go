package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/securebi/securebi-backend/pkg/auth"
	"github.com/securebi/securebi-backend/pkg/bq"
	"github.com/securebi/securebi-backend/pkg/cache"
	"github.com/securebi/securebi-backend/pkg/config/v2"
	"github.com/securebi/securebi-backend/pkg/cubegen"
	"github.com/securebi/securebi-backend/pkg/database"
	"github.com/securebi/securebi-backend/pkg/llm"
	"github.com/securebi/securebi-backend/pkg/requestlogger"
	"github.com/securebi/securebi-backend/pkg/service/core"
	apiclients "github.com/securebi/securebi-backend/pkg/service/core/api"
	"github.com/securebi/securebi-backend/pkg/service/core/handlers"
	"github.com/securebi/securebi-backend/pkg/service/core/routes"
	"github.com/securebi/securebi-backend/pkg/service/core/storage"
	flag "github.com/spf13/pflag"
)

var (
	configFilePath = flag.String("config", "config.yaml", "path to config file")
	printRoutes    = flag.Bool("print-routes", false, "print the routes and exit")
)

const shutdownTimeout = 5 * time.Second

func main() {
	flag.Parse()

	zlog := zerolog.New(os.Stdout).With().Timestamp().Logger()

	fileParts, err := config.ProcessConfigPath(*configFilePath)
	if err != nil {
		zlog.Fatal().Err(err).Msg("processing config path")
	}

	cfg, err := config.NewFileSystemLoader().Load(fileParts.FileName, fileParts.Path, "SECUREBI", config.NewDefaultEnvBinder())
	if err != nil {
		zlog.Fatal().Err(err).Msg("loading config")
	}

	err = cfg.Validate()
	if err != nil {
		zlog.Fatal().Err(err).Msg("validating config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		zlog.Fatal().Err(err).Msg("parsing log level")
	}
	zlog = zlog.Level(level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	repo, err := database.New(
		cfg.Postgres.ConnectionString(),
		cfg.Postgres.Configuration.MaxIdleConnections,
		cfg.Postgres.Configuration.MaxOpenConnections,
		zlog.With().Str("subsystem", "repo").Logger(),
	)
	if err != nil {
		zlog.Fatal().Err(err).Msg("setting up database")
	}

	schemaCacheDuration := cfg.CacheDuration()
	if cfg.BigQuery.SchemaCacheSeconds > 0 {
		schemaCacheDuration = time.Duration(cfg.BigQuery.SchemaCacheSeconds) * time.Second
	}

	schemaCacher := cache.New(schemaCacheDuration, repo.GetDB(), zlog.With().Str("subsystem", "schema_cache").Logger())

	bqClient := bq.NewClient(cfg.BigQuery.Endpoint, cfg.BigQuery.EnableAuth, zlog.With().Str("subsystem", "bigquery").Logger())

	model, err := llm.New(ctx, llm.Config{
		Model:       cfg.GenAI.Model,
		UseVertexAI: cfg.GenAI.UseVertexAI,
		Project:     cfg.GenAI.Project,
		Location:    cfg.GenAI.Location,
		APIKey:      cfg.GenAI.APIKey,
		BaseURL:     cfg.GenAI.BaseURL,
		Timeout:     time.Duration(cfg.GenAI.TimeoutSeconds) * time.Second,
	}, zlog.With().Str("subsystem", "llm").Logger())
	if err != nil {
		zlog.Fatal().Err(err).Msg("setting up language model")
	}

	generator := cubegen.New(model, zlog.With().Str("subsystem", "cubegen").Logger())

	stores := storage.NewStores(repo)
	apiClients := apiclients.NewClients(schemaCacher, bqClient, generator, model, cfg)
	services := core.NewServices(stores, apiClients)

	authenticator := auth.NewMiddleware(auth.DefaultUserID, zlog.With().Str("subsystem", "auth").Logger())

	h := handlers.NewHandlers(services)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestlogger.Middleware(zlog, "/internal/metrics", "/health"))

	collectors := append(repo.Metrics(), model.Metrics()...)
	collectors = append(collectors, generator.Metrics())

	routes.Add(router, cfg.CORS.AllowedOrigins,
		routes.NewStatusRoutes(routes.NewStatusEndpoints(zlog, h)),
		routes.NewDataSourceRoutes(routes.NewDataSourceEndpoints(zlog, h), authenticator.Handler),
		routes.NewDataCubeRoutes(routes.NewDataCubeEndpoints(zlog, h), authenticator.Handler),
		routes.NewDashboardRoutes(routes.NewDashboardEndpoints(zlog, h), authenticator.Handler),
		routes.NewEntitlementRoutes(routes.NewEntitlementEndpoints(zlog, h), authenticator.Handler),
		routes.NewMarketplaceRoutes(routes.NewMarketplaceEndpoints(zlog, h), authenticator.Handler),
		routes.NewAppConfigRoutes(routes.NewAppConfigEndpoints(zlog, h), authenticator.Handler),
		routes.NewMetricsRoutes(routes.NewMetricsEndpoints(prom(collectors...))),
	)

	if *printRoutes {
		err = routes.Print(router, os.Stdout)
		if err != nil {
			zlog.Fatal().Err(err).Msg("printing routes")
		}

		return
	}

	server := http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Address, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		zlog.Info().Msgf("listening on %s", server.Addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal().Err(err).Msg("server error")
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Warn().Err(err).Msg("shutdown error")
	}
}

func prom(cols ...prometheus.Collector) *prometheus.Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(prometheus.NewGoCollector())
	r.MustRegister(cols...)

	return r
}
