package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/events"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/fallback"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/handler"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/repository"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/service"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/session"
	"github.com/cloud-wave-best-zizon/stockify-web/pkg/config"
	"github.com/cloud-wave-best-zizon/stockify-web/pkg/tls"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env 는 로컬 실행에서만 사용
	_ = godotenv.Load()

	// Config 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Logger 초기화
	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// SPIFFE mTLS (TLS_ENABLED=false 이면 nil)
	tlsSource, err := tls.NewSource(ctx, &cfg.TLSConfig, logger)
	if err != nil {
		logger.Fatal("Failed to create TLS source", zap.Error(err))
	}
	defer tlsSource.Close()
	go tlsSource.Watch(ctx, time.Minute)

	// Web service clients
	httpClient := tlsSource.HTTPClient()
	categoryRepo := repository.NewCategoryRepository(
		repository.NewSOAPClient("CategoriaWS", cfg.CategoryURL, cfg.Namespace, httpClient, logger))
	productRepo := repository.NewProductRepository(
		repository.NewSOAPClient("ProductoWS", cfg.ProductURL, cfg.Namespace, httpClient, logger))
	companyRepo := repository.NewCompanyRepository(
		repository.NewSOAPClient("EmpresaWS", cfg.CompanyURL, cfg.Namespace, httpClient, logger))
	stockRepo := repository.NewStockRepository(
		repository.NewSOAPClient("ExistenciasWS", cfg.StockURL, cfg.Namespace, httpClient, logger))

	// Form session store
	store, closeStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to create session store",
			zap.String("backend", cfg.SessionBackend),
			zap.Error(err))
	}
	defer closeStore()
	logger.Info("Session store ready", zap.String("backend", cfg.SessionBackend))

	// Kafka (KAFKA_BROKERS 가 없으면 비활성)
	var publisher events.Publisher = events.NopPublisher{}
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		producer := events.NewKafkaProducer(brokers, cfg.KafkaTopic, logger)
		defer producer.Close()
		publisher = producer
		logger.Info("Kafka producer initialized",
			zap.Strings("brokers", brokers),
			zap.String("topic", cfg.KafkaTopic))
	}

	// Service, Handler 초기화
	examples := fallback.Examples{}
	inventoryService := service.NewInventoryService(categoryRepo, productRepo, stockRepo, store, examples, publisher, logger)
	supplierService := service.NewSupplierService(companyRepo, store, examples, publisher, logger)

	if !cfg.LocalMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(
		handler.NewInventoryHandler(inventoryService, logger),
		handler.NewSupplierHandler(supplierService, logger),
		logger,
		cfg.TLSConfig.Enabled,
	)

	// Server 시작
	srv := &http.Server{
		Addr:      ":" + cfg.Port,
		Handler:   router,
		TLSConfig: tlsSource.ServerConfig(),
	}

	go func() {
		logger.Info("Starting server",
			zap.String("port", cfg.Port),
			zap.Bool("tls", cfg.TLSConfig.Enabled))
		var err error
		if srv.TLSConfig != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.LocalMode {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	zapCfg.Level = level

	return zapCfg.Build()
}

func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	switch cfg.SessionBackend {
	case config.SessionBackendDynamoDB:
		client, err := session.NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return session.NewDynamoStore(client, cfg.SessionTableName, cfg.SessionTTL), func() {}, nil
	case config.SessionBackendRedis:
		client, err := cfg.Config.New(ctx)
		if err != nil {
			return nil, nil, err
		}
		return session.NewRedisStore(client, cfg.SessionTTL), func() { client.Close() }, nil
	default:
		return session.NewMemoryStore(cfg.SessionTTL), func() {}, nil
	}
}
