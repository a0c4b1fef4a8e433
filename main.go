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

	"bgm-auto-tracker/domain/repository"
	"bgm-auto-tracker/infrastructure/cache"
	"bgm-auto-tracker/infrastructure/clients/bangumi"
	"bgm-auto-tracker/infrastructure/configuration"
	"bgm-auto-tracker/infrastructure/logger"
	"bgm-auto-tracker/infrastructure/persistence"
	httpHandler "bgm-auto-tracker/interfaces/http"
	"bgm-auto-tracker/server"
	"bgm-auto-tracker/usecase"

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
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	if found := configuration.LoadEnvFromFile("config.env", ".env"); len(found) > 0 {
		logger.GetLogger().WithField("files", found).Info("Loaded env files")
		configuration.Load()
	}
	app := configuration.C.App

	mongoClient, err := persistence.NewMongoDb(ctx, configuration.C.Database.Mongo.URI)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("MongoDB not available")
	}
	defer func() {
		disconnectCtx, cancelDisconnect := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelDisconnect()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			logger.GetLogger().WithField("error", err).Error("MongoDB disconnect failed")
		}
	}()
	mongoDb := mongoClient.Database(configuration.C.Database.Mongo.Name)
	if err := persistence.EnsureIndexes(ctx, mongoDb); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed ensuring MongoDB indexes")
	}
	logger.GetLogger().WithField("database", mongoDb.Name()).Info("MongoDB connected successfully")

	var subjectCache repository.ISubjectCache
	if configuration.C.RedisClient.RedisEnabled() {
		redisClient, err := cache.NewCache(
			ctx,
			configuration.C.RedisClient.Addr(),
			configuration.C.RedisClient.Username,
			configuration.C.RedisClient.Password,
			configuration.C.RedisClient.DB,
		)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without subject cache")
		} else {
			defer redisClient.Close()
			subjectCache = cache.NewSubjectCache(redisClient, configuration.C.RedisClient.TTL())
			logger.GetLogger().WithField("ttl", configuration.C.RedisClient.TTL().String()).Info("Redis client initialized successfully.")
		}
	}

	bangumiClient := bangumi.NewClient(bangumi.Config{
		ClientID:     configuration.C.Bangumi.ClientID,
		ClientSecret: configuration.C.Bangumi.ClientSecret,
		RedirectURL:  app.CallbackURL(),
		AuthURL:      configuration.C.Bangumi.AuthURL,
		TokenURL:     configuration.C.Bangumi.TokenURL,
	})
	defer bangumiClient.Close()

	tokenRepository := persistence.NewTokenRepository(mongoDb)
	subjectRepository := persistence.NewSubjectRepository(persistence.SubjectCollections(mongoDb))
	statisticRepository := persistence.NewMissingStatisticRepository(mongoDb)
	reportRepository := persistence.NewMissingReportRepository(mongoDb)

	oauthUsecase := usecase.NewOAuthUsecase(bangumiClient, tokenRepository)
	subjectUsecase := usecase.NewSubjectUsecase(subjectRepository, subjectCache, statisticRepository)
	missingUsecase := usecase.NewMissingUsecase(statisticRepository, reportRepository)

	homeHandler := httpHandler.NewHomeHandler(app.ProjectURL, func(ctx context.Context) error {
		return mongoClient.Ping(ctx, nil)
	})
	oauthHandler := httpHandler.NewOAuthHandler(oauthUsecase)
	subjectHandler := httpHandler.NewSubjectHandler(subjectUsecase)
	missingHandler := httpHandler.NewMissingHandler(missingUsecase)

	router := server.InitiateRouter(homeHandler, oauthHandler, subjectHandler, missingHandler)

	logger.GetLogger().WithFields(map[string]interface{}{
		"port":     app.Port,
		"callback": app.CallbackURL(),
	}).Info("Starting application")
	httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.Port),
		Handler: router,
	}
	g.Go(func() error {
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

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.GetLogger().WithField("error", err).Error("HTTP server shutdown failed")
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
	}
	logger.GetLogger().Info("Application stopped")
}
