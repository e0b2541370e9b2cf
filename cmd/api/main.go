package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gbmfoods/admin-api/internal/application/service"
	"github.com/gbmfoods/admin-api/internal/config"
	"github.com/gbmfoods/admin-api/internal/infrastructure/database"
	infraRepo "github.com/gbmfoods/admin-api/internal/infrastructure/repository"
	"github.com/gbmfoods/admin-api/internal/presentation/http/handler"
	"github.com/gbmfoods/admin-api/internal/presentation/http/routes"
	"github.com/gbmfoods/admin-api/pkg/logger"
	"github.com/gbmfoods/admin-api/pkg/oauth"
	"github.com/gbmfoods/admin-api/pkg/paystack"
	"github.com/gbmfoods/admin-api/pkg/printer"
	"github.com/gbmfoods/admin-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.App.Env)
	defer logger.Sync()

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	fsClient, err := database.NewFirestoreClient(ctx, &cfg.Firestore)
	if err != nil {
		logger.L().Fatal("failed to connect to document store", zap.Error(err))
	}
	defer fsClient.Close()

	// Repositories
	orderRepo := infraRepo.NewOrderRepository(fsClient)
	venueRepo := infraRepo.NewVenueRepository(fsClient)
	userRepo := infraRepo.NewUserRepository(fsClient)
	agentRepo := infraRepo.NewAgentRepository(fsClient)
	adminRepo := infraRepo.NewAdminRepository(fsClient)

	// Auth
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)
	googleOAuth := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
	})

	// Receipt printer
	receiptPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		logger.L().Warn("printer unavailable, receipts will not be printed", zap.Error(err))
		receiptPrinter = printer.NewNullPrinter()
	}

	// Services
	orderService := service.NewOrderService(orderRepo, venueRepo)
	printerService := service.NewPrinterService(receiptPrinter, orderRepo, cfg.Receipt, cfg.Printer.Type)
	dashboardService := service.NewDashboardService(orderRepo, venueRepo, userRepo, agentRepo)
	directoryService := service.NewDirectoryService(userRepo, agentRepo, venueRepo)
	transactionService := service.NewTransactionService(paystack.NewClient(cfg.Paystack.SecretKey, cfg.Paystack.BaseURL))
	authService := service.NewAuthService(adminRepo, jwtManager, googleOAuth)

	// Handlers
	h := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Order:       handler.NewOrderHandler(orderService),
		Printer:     handler.NewPrinterHandler(printerService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Directory:   handler.NewDirectoryHandler(directoryService),
		Transaction: handler.NewTransactionHandler(transactionService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	routes.Setup(router, cfg, jwtManager, h)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		logger.L().Info("starting server",
			zap.String("name", cfg.App.Name),
			zap.String("port", cfg.App.Port),
			zap.String("env", cfg.App.Env),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("forced shutdown", zap.Error(err))
	}

	logger.L().Info("server stopped")
}
