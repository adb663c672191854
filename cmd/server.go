package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/vectasec/tara-backend/api"
	"github.com/vectasec/tara-backend/infra"
	"github.com/vectasec/tara-backend/repositories"
	"github.com/vectasec/tara-backend/usecases"
	"github.com/vectasec/tara-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:              utils.GetStringEnv("ENV", "development"),
		AppName:          "tara-backend",
		Port:             utils.GetRequiredStringEnv("PORT"),
		JwtSigningSecret: []byte(utils.GetRequiredStringEnv("AUTHENTICATION_JWT_SIGNING_SECRET")),
		AllowedOrigins:   splitCommaList(utils.GetStringEnv("ALLOWED_ORIGINS", "")),
		DefaultTimeout:   time.Duration(utils.GetIntEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
		SnapshotTimeout:  time.Duration(utils.GetIntEnv("SNAPSHOT_TIMEOUT_SECOND", 30)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetStringEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetStringEnv("PG_DATABASE", "tara"),
		Hostname:           utils.GetStringEnv("PG_HOSTNAME", ""),
		Password:           utils.GetStringEnv("PG_PASSWORD", ""),
		Port:               utils.GetStringEnv("PG_PORT", "5432"),
		User:               utils.GetStringEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetIntEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetStringEnv("PG_SSL_MODE", "prefer"),
	}
	evidenceBucketUrl := utils.GetStringEnv("EVIDENCE_BUCKET_URL", "")

	logger := utils.NewLogger(utils.GetStringEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		return err
	}

	repos := repositories.NewRepositories(pool)
	uc := usecases.NewUsecases(repos,
		usecases.WithEvidenceBucketUrl(evidenceBucketUrl),
	)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error while serving the app", "error", err.Error())
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "error while shutting down the server")
	}
	return nil
}

func splitCommaList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
