package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pagecaster/domain/repository"
	"pagecaster/infrastructure/cache"
	"pagecaster/infrastructure/clients/graph"
	"pagecaster/infrastructure/configuration"
	"pagecaster/infrastructure/logger"
	"pagecaster/infrastructure/persistence"
	"pagecaster/infrastructure/pubsub"
	"pagecaster/infrastructure/servicebus"
	httpHandler "pagecaster/interfaces/http"
	"pagecaster/server"
	"pagecaster/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	credentialStore, err := initiateCredentialStore(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Credential store initialization failed")
		os.Exit(1)
	}

	graphClient := graph.NewClient(configuration.C.Graph.BaseURL, configuration.C.Graph.Version, nil)

	publishOpts := initiateNotifiers(ctx)
	if insightsCache := initiateInsightsCache(ctx); insightsCache != nil {
		publishOpts = append(publishOpts, usecase.WithInsightsCache(insightsCache))
	}

	publishUsecase := usecase.NewPublishUsecase(graphClient, credentialStore, configuration.C.Insights.Metrics, publishOpts...)
	pageUsecase := usecase.NewPageUsecase(graphClient, credentialStore)

	publishHandler := httpHandler.NewPublishHandler(publishUsecase)
	pageHandler := httpHandler.NewPageHandler(pageUsecase)
	facebookOAuthHandler := httpHandler.NewFacebookOAuthHandler()

	router := server.InitiateRouter(publishHandler, pageHandler, facebookOAuthHandler)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateCredentialStore wires the vendor-selected page credential store.
// Mongo is the default; DB_VENDOR=postgres switches to PostgreSQL.
func initiateCredentialStore(ctx context.Context) (repository.IPageCredential, error) {
	if configuration.C.Database.Vendor == "postgres" {
		psqlDb, err := persistence.NewPostgreSQLDB()
		if err != nil {
			return nil, err
		}
		if err := persistence.EnsurePageCredentialSchema(psqlDb); err != nil {
			return nil, err
		}
		logger.GetLogger().Info("PostgreSQL credential store connected")
		return persistence.NewPageCredentialRepositoryPostgres(psqlDb), nil
	}

	mongoDb, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		return nil, err
	}
	if err := mongoDb.Ping(ctx, nil); err != nil {
		return nil, err
	}
	logger.GetLogger().Info("MongoDB connected successfully")
	return persistence.NewPageCredentialRepository(mongoDb, configuration.C.Database.Mongo.Name), nil
}

// initiateNotifiers wires the optional best-effort publish-event emitters.
// Missing brokers only log a warning; publishing works without them.
func initiateNotifiers(ctx context.Context) []usecase.Option {
	var opts []usecase.Option

	if configuration.C.Pubsub.ProjectID != "" {
		pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub.ProjectID)
		if err != nil || pubSubClient == nil {
			logger.GetLogger().WithField("error", err).Warn("PubSub not available - continuing without event emission")
		} else {
			opts = append(opts, usecase.WithPublishEvents(
				pubsub.NewPublishEventPubSub(pubSubClient, configuration.C.Pubsub.Topic)))
		}
	}

	if configuration.C.ServiceBus.ConnectionString != "" {
		azClient, err := servicebus.NewServiceBus(configuration.C.ServiceBus.ConnectionString)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - continuing without event emission")
		} else {
			opts = append(opts, usecase.WithPublishEvents(
				servicebus.NewPublishEventServiceBus(azClient, configuration.C.ServiceBus.Queue)))
		}
	}

	return opts
}

func initiateInsightsCache(ctx context.Context) repository.IInsightsCache {
	if configuration.C.RedisClient.Host == "" {
		return nil
	}
	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - insights caching disabled")
		return nil
	}
	logger.GetLogger().Info("Redis client initialized successfully.")
	return cache.NewInsightsCache(redisClient, time.Duration(configuration.C.Insights.CacheTTLSeconds)*time.Second)
}
