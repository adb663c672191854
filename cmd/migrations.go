package cmd

import (
	"context"
	"fmt"

	"github.com/vectasec/tara-backend/infra"
	"github.com/vectasec/tara-backend/repositories"
	"github.com/vectasec/tara-backend/utils"
)

func RunMigrations() error {
	pgConfig := infra.PgConfig{
		ConnectionString: utils.GetStringEnv("PG_CONNECTION_STRING", ""),
		Database:         utils.GetStringEnv("PG_DATABASE", "tara"),
		Hostname:         utils.GetStringEnv("PG_HOSTNAME", ""),
		Password:         utils.GetStringEnv("PG_PASSWORD", ""),
		Port:             utils.GetStringEnv("PG_PORT", "5432"),
		User:             utils.GetStringEnv("PG_USER", ""),
		SslMode:          utils.GetStringEnv("PG_SSL_MODE", "prefer"),
	}

	logger := utils.NewLogger(utils.GetStringEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := repositories.RunMigrations(pgConfig.GetConnectionString(), logger); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
		return err
	}
	return nil
}
