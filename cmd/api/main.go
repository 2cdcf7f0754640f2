package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"facility-admin/internal/config"
	"facility-admin/internal/cron"
	"facility-admin/internal/domain/academy"
	"facility-admin/internal/domain/account"
	"facility-admin/internal/domain/ads"
	"facility-admin/internal/domain/court"
	"facility-admin/internal/domain/gatepass"
	"facility-admin/internal/domain/notice"
	"facility-admin/internal/domain/order"
	"facility-admin/internal/domain/payments"
	"facility-admin/internal/domain/retail"
	"facility-admin/internal/domain/sport"
	"facility-admin/internal/domain/stats"
	"facility-admin/internal/firebase"
	apihttp "facility-admin/internal/http"
	"facility-admin/internal/logging"
	"facility-admin/internal/uploads"
)

func main() {
	logging.Init()
	log := logging.L()
	defer log.Sync()

	ctx := context.Background()
	cfg := config.Load()

	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		log.Fatal("firebase init failed", zap.Error(err))
	}
	defer clients.Close()

	// Repositories
	academyRepo := academy.NewRepo(clients.Firestore)
	sportRepo := sport.NewRepo(clients.Firestore)
	courtRepo := court.NewRepo(clients.Firestore)
	retailRepo := retail.NewRepo(clients.Firestore)
	orderRepo := order.NewRepo(clients.Firestore)
	gatePassRepo := gatepass.NewRepo(clients.Firestore)
	accountRepo := account.NewRepo(clients.Firestore)

	// Services
	academySvc := academy.NewService(academyRepo)
	sportSvc := sport.NewService(sportRepo)
	courtSvc := court.NewService(courtRepo)
	retailSvc := retail.NewService(retailRepo, log)
	orderSvc := order.NewService(orderRepo)
	gatePassSvc := gatepass.NewService(gatePassRepo)
	noticeSvc := notice.NewService(clients.Firestore)
	adsSvc := ads.NewService(clients.Firestore)
	accountSvc := account.NewService(accountRepo, clients.Auth, cfg.ProjectURL, log)
	statsSvc := stats.NewService(clients.Firestore)
	uploadsSvc := uploads.NewService(clients.Storage, cfg.StorageBucket, log)
	signedURLs := uploads.NewSignedURLs(cfg)

	// Payments service (optional - only if configured)
	var paymentsSvc *payments.Service
	paymentsCfg := payments.LoadConfig()
	if paymentsCfg.SecretKey != "" {
		paymentsSvc = payments.NewService(orderSvc, orderRepo, paymentsCfg)
		log.Info("payments service initialized")
	} else {
		log.Info("STRIPE_SECRET_KEY not set, payment features disabled")
	}

	// Daily account expiry sweep runs through the asynq worker.
	cron.InitExpiryWorker(cfg, accountSvc)

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:         cfg,
		AuthClient:  clients.Auth,
		AcademySvc:  academySvc,
		SportSvc:    sportSvc,
		CourtSvc:    courtSvc,
		RetailSvc:   retailSvc,
		OrderSvc:    orderSvc,
		GatePassSvc: gatePassSvc,
		NoticeSvc:   noticeSvc,
		AdsSvc:      adsSvc,
		AccountSvc:  accountSvc,
		StatsSvc:    statsSvc,
		PaymentsSvc: paymentsSvc,
		UploadsSvc:  uploadsSvc,
		SignedURLs:  signedURLs,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	go func() {
		log.Info("API listening", zap.String("port", cfg.Port), zap.String("project", cfg.ProjectID))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("shutting down...")
	_ = srv.Shutdown(ctxShutdown)
}
