package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mobileheap/profilecard/pkg/cmd"
	"github.com/mobileheap/profilecard/pkg/env"
	"github.com/mobileheap/profilecard/pkg/http"
	"github.com/mobileheap/profilecard/pkg/lazy"
	"github.com/mobileheap/profilecard/pkg/log"
	"github.com/mobileheap/profilecard/pkg/metric"
	"github.com/mobileheap/profilecard/pkg/observability"
	"github.com/mobileheap/profilecard/pkg/sql"
	"github.com/mobileheap/profilecard/pkg/strings"
)

const directoryDestination http.Destination = "directory"

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

type InfrastructureContainer struct {
	DirectoryHTTPClient lazy.Loader[http.Client]
	DBMigrations        lazy.Loader[SQLMigrations]
	DB                  lazy.Loader[sql.Database]
	Metrics             lazy.Loader[metric.Metrics]
	Observer            lazy.Loader[observability.Observer]
	Logger              lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	metrics := metricsProvider()
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(logger)
	dbMigrations := sqlMigrationsProvider(ctx, db, logger)

	return &InfrastructureContainer{
		DirectoryHTTPClient: directoryHTTPClientProvider(observer, metrics, logger),
		DBMigrations:        dbMigrations,
		DB:                  db,
		Metrics:             metrics,
		Observer:            observer,
		Logger:              logger,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad()) {
		defer os.Exit(1)
	}

	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func metricsProvider() lazy.Loader[metric.Metrics] {
	return lazy.New(func() (metric.Metrics, error) {
		return metric.NewMetricsStub(), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		logLevel, ok := logLevelMap[logLevelStr]
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID),
		), nil
	})
}

func sqlDatabaseProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := &sql.Config{
			Path: env.Must(env.Parse[string]("PROFILE_DB_PATH")),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func directoryHTTPClientProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Client] {
	return lazy.New(func() (http.Client, error) {
		hostEnv := fmt.Sprintf("%s_SERVICE_URL", strings.ToScreamingSnakeCase(string(directoryDestination)))
		baseURL := env.Must(env.Parse[string](hostEnv))

		baseClient := http.NewClient(
			http.WithRequestObservability(observer.MustLoad(), http.DefaultRequestIDHeader),
		)
		return baseClient.With(
			http.WithBaseURL(baseURL),
			http.WithRequestLogging(directoryDestination, logger.MustLoad(), log.LevelInfo, log.LevelWarn),
			http.WithRequestMetrics(directoryDestination, metrics.MustLoad()),
		), nil
	})
}
