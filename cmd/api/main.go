package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/praiadomeio/app-ampm/internal/auth"
	"github.com/praiadomeio/app-ampm/internal/config"
	"github.com/praiadomeio/app-ampm/internal/handlers"
	"github.com/praiadomeio/app-ampm/internal/logging"
	"github.com/praiadomeio/app-ampm/internal/middleware"
	"github.com/praiadomeio/app-ampm/internal/observability"
	"github.com/praiadomeio/app-ampm/internal/services"
	"github.com/praiadomeio/app-ampm/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/praiadomeio/app-ampm/docs"
)

// @title           AM Praia do Meio API
// @version         1.0
// @description     API de gestão da Associação de Moradores da Praia do Meio: cadastro de associados, mensalidades, livro caixa e relatórios.

// @contact.name   AM Praia do Meio
// @contact.email  contato@praiadomeio.org.br

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name auth
// @tag.description Sessão e senha
// @tag.name members
// @tag.description Associados, catálogo de endereços e aniversários
// @tag.name payments
// @tag.description Grade de mensalidades
// @tag.name cashflow
// @tag.description Livro caixa e despesas
// @tag.name reports
// @tag.description Painéis e relatórios
// @tag.name users
// @tag.description Contas do sistema
// @tag.name health
// @tag.description Verificação de saúde

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logging.Logger.Sync()

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx := context.Background()

	// Initialize observability
	if err := observability.InitTracer(ctx); err != nil {
		logging.Logger.Error("failed to initialize tracer", zap.Error(err))
	}
	defer observability.ShutdownTracer()

	// Open the record store
	backend, err := store.Open(ctx)
	if err != nil {
		logging.Logger.Fatal("failed to open record store",
			zap.String("backend", config.AppConfig.StoreBackend),
			zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store.Close(closeCtx)
	}()

	// Start the audit worker
	var auditWorker *services.AuditWorker
	if config.AppConfig.AuditLogsEnabled {
		auditWorker = services.NewAuditWorker(auditSink(), config.AppConfig.AuditBufferSize)
		auditWorker.Start()
	}

	// Load the ledger
	repo := store.NewRepository(backend, config.AppConfig.BootstrapAdminPassword)
	service, err := services.NewAssociationService(ctx, repo,
		services.WithAuditWorker(auditWorker),
		services.WithDirectoryCity(config.AppConfig.DirectoryCity),
	)
	if err != nil {
		logging.Logger.Fatal("failed to load association records", zap.Error(err))
	}

	tokens := auth.NewTokenMaker(config.AppConfig.JWTSecret, config.AppConfig.JWTTTL)
	limiter := services.NewLoginLimiter(config.AppConfig.LoginRateLimit, config.AppConfig.LoginRateBurst)
	h := handlers.NewHandlers(service, tokens, limiter)

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		cors.New(corsConfig()),
		middleware.RequestID(),
		middleware.RequestTracker(),
		middleware.RequestTiming(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	handlers.RegisterRoutes(router, h)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
			zap.String("store", backend.Name()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Error("server forced to shutdown", zap.Error(err))
	}

	// Flush pending audit events after the last request is done
	auditWorker.Stop()

	logging.Logger.Info("server exited gracefully")
}

// auditSink writes to MongoDB when connected and to the log otherwise
func auditSink() services.AuditSink {
	if config.MongoDB != nil {
		return services.NewMongoAuditSink(config.MongoDB.Collection(config.AppConfig.AuditLogsCollection))
	}
	return services.NewLogAuditSink()
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = config.AppConfig.CORSAllowedOrigins
	if slices.Contains(cfg.AllowOrigins, "*") {
		cfg.AllowOrigins = nil
		cfg.AllowAllOrigins = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	return cfg
}
