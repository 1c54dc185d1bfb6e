package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/platform/config"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/platform/httpserver"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/platform/logger"
	platformmetrics "github.com/TdivyanshC/Swadeshi-Hind-Party/internal/platform/metrics"
	platformmongo "github.com/TdivyanshC/Swadeshi-Hind-Party/internal/platform/mongo"
	submissionhandler "github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/handler"
	submetrics "github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/metrics"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/models"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/service"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/store"
	httptransport "github.com/TdivyanshC/Swadeshi-Hind-Party/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// The store client is constructed here and injected; nothing holds
// module-level connection state.
func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := platformmongo.New(ctx, cfg)
	cancel()
	if err != nil {
		log.Error("failed to connect to mongodb", "error", err)
		os.Exit(1)
	}

	httpMetrics := platformmetrics.New()
	submissionMetrics := submetrics.New()

	stores := service.Stores{
		Donations:   store.NewMongo[models.Donation](mongoClient.Database, store.CollectionDonations),
		Memberships: store.NewMongo[models.Membership](mongoClient.Database, store.CollectionMemberships),
		Volunteers:  store.NewMongo[models.Volunteer](mongoClient.Database, store.CollectionVolunteers),
		Contacts:    store.NewMongo[models.Contact](mongoClient.Database, store.CollectionContacts),
	}

	svc := service.New(stores, log, service.WithMetrics(submissionMetrics))
	submissions := submissionhandler.New(svc, log, submissionMetrics)

	router := httptransport.NewRouter(httptransport.Deps{
		Submissions: submissions,
		Pinger:      mongoClient,
		Logger:      log,
		Metrics:     httpMetrics,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting swadeshi hindu party api", "addr", cfg.Addr, "db", cfg.DBName)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if err := mongoClient.Close(shutdownCtx); err != nil {
		log.Error("mongodb disconnect failed", "error", err)
	}
	log.Info("server stopped")
}
