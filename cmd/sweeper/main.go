// Sweeper runs the subscription expiry sweep once and exits. Meant for
// system cron or manual runs, complementing the in-process scheduler.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/moqawil/moqawil_server/config"
	"github.com/moqawil/moqawil_server/internal/database"
	"github.com/moqawil/moqawil_server/internal/pkg/email"
	"github.com/moqawil/moqawil_server/internal/pkg/logger"
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

	userRepo := repository.NewUserRepo(db)
	companyRepo := repository.NewCompanyRepo(db)
	subRepo := repository.NewSubscriptionRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	contentRepo := repository.NewContentRepo(db)
	pricingRepo := repository.NewPricingRepo(db)

	quotaSvc := service.NewQuotaService(cfg, contentRepo, subRepo)
	emailSvc := email.NewService(&cfg.Email)

	// No publisher: a one-shot process has no websocket peers to feed,
	// tenants still get the stored notification rows.
	subSvc := service.NewSubscriptionService(db, cfg, subRepo, paymentRepo, companyRepo, userRepo, pricingRepo, quotaSvc, emailSvc, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := subSvc.ExpireOverdue(ctx); err != nil {
		log.Fatal().Err(err).Msg("expiry sweep failed")
	}
	log.Info().Msg("expiry sweep finished")
}
