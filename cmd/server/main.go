package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/moqawil/moqawil_server/config"
	"github.com/moqawil/moqawil_server/internal/api"
	"github.com/moqawil/moqawil_server/internal/api/handler"
	"github.com/moqawil/moqawil_server/internal/database"
	"github.com/moqawil/moqawil_server/internal/pkg/cron"
	"github.com/moqawil/moqawil_server/internal/pkg/email"
	"github.com/moqawil/moqawil_server/internal/pkg/logger"
	"github.com/moqawil/moqawil_server/internal/pkg/oss"
	"github.com/moqawil/moqawil_server/internal/pkg/pubsub"
	"github.com/moqawil/moqawil_server/internal/pkg/ws"
	"github.com/moqawil/moqawil_server/internal/repository"
	"github.com/moqawil/moqawil_server/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Server.Mode, cfg.Log.Level)

	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ossClient, err := oss.NewClient(&cfg.OSS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init object storage")
	}

	emailSvc := email.NewService(&cfg.Email)
	publisher := pubsub.NewPublisher(rdb)
	subscriber := pubsub.NewSubscriber(rdb)
	hub := ws.NewHub()

	userRepo := repository.NewUserRepo(db)
	companyRepo := repository.NewCompanyRepo(db)
	subRepo := repository.NewSubscriptionRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	contentRepo := repository.NewContentRepo(db)
	notifRepo := repository.NewNotificationRepo(db)
	ticketRepo := repository.NewTicketRepo(db)
	statRepo := repository.NewStatisticRepo(db)
	pricingRepo := repository.NewPricingRepo(db)

	quotaSvc := service.NewQuotaService(cfg, contentRepo, subRepo)
	authSvc := service.NewAuthService(db, cfg, userRepo, companyRepo, emailSvc)
	subSvc := service.NewSubscriptionService(db, cfg, subRepo, paymentRepo, companyRepo, userRepo, pricingRepo, quotaSvc, emailSvc, publisher)
	companySvc := service.NewCompanyService(db, cfg, companyRepo, contentRepo, subRepo, statRepo, notifRepo, ticketRepo, ossClient)
	contentSvc := service.NewContentService(contentRepo, quotaSvc)
	notifSvc := service.NewNotificationService(notifRepo, publisher)
	supportSvc := service.NewSupportService(db, ticketRepo, notifSvc)
	statsSvc := service.NewStatsService(statRepo, companyRepo, subRepo, paymentRepo, ticketRepo)
	pricingSvc := service.NewPricingService(pricingRepo)

	handlers := &api.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		Public:       handler.NewPublicHandler(companySvc, subSvc, pricingSvc),
		Company:      handler.NewCompanyHandler(companySvc),
		Content:      handler.NewContentHandler(contentSvc),
		Subscription: handler.NewSubscriptionHandler(subSvc),
		Notification: handler.NewNotificationHandler(notifSvc),
		Support:      handler.NewSupportHandler(supportSvc),
		Statistics:   handler.NewStatisticsHandler(statsSvc),
		Admin:        handler.NewAdminHandler(companySvc, subSvc, supportSvc, notifSvc, pricingSvc, statsSvc),
		WebSocket:    handler.NewWebSocketHandler(hub, companyRepo, cfg.JWT.Secret),
	}

	engine := api.SetupRouter(cfg, handlers, &api.Repos{
		Company:      companyRepo,
		Subscription: subRepo,
	})

	// Relay redis notifications into live websocket connections.
	relayCtx, cancelRelay := context.WithCancel(context.Background())
	go func() {
		err := subscriber.Subscribe(relayCtx, func(msg *pubsub.NotificationMessage) {
			payload, err := json.Marshal(msg)
			if err != nil {
				return
			}
			if msg.CompanyID == 0 {
				hub.Broadcast(payload)
			} else {
				hub.Push(msg.CompanyID, payload)
			}
		})
		if err != nil && relayCtx.Err() == nil {
			log.Error().Err(err).Msg("notification relay stopped")
		}
	}()

	scheduler := cron.NewScheduler()
	scheduler.Add(&cron.Job{
		Name:     "expire_subscriptions",
		Interval: time.Hour,
		Run:      subSvc.ExpireOverdue,
	})
	scheduler.Start()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: engine,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	scheduler.Stop()
	cancelRelay()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
