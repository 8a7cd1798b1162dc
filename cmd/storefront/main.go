package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/shopease/storefront/internal/catalog"
	"github.com/shopease/storefront/internal/domain"
	"github.com/shopease/storefront/internal/events"
	h "github.com/shopease/storefront/internal/http"
	"github.com/shopease/storefront/internal/repository"
	"github.com/shopease/storefront/internal/service"
	"github.com/shopease/storefront/internal/sheets"
	"github.com/shopease/storefront/internal/store"
)

// defaultSheetURL points at the published catalog spreadsheet.
const defaultSheetURL = "https://docs.google.com/spreadsheets/d/1HXSlafhvGbIwOMDTf89TxVMbhhH4LSYhPDmF5FEe4As/edit?gid=1982934393#gid=1982934393"

type Config struct {
	HTTPPort        string
	SheetURL        string
	RedisAddr       string
	RedisPassword   string
	SQLitePath      string
	MigrationsPath  string
	KafkaBrokers    string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		SheetURL:        getEnv("SHEET_URL", defaultSheetURL),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		SQLitePath:      getEnv("SQLITE_PATH", ""),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "internal/repository/migrations"),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	// Local persistence: redis when configured, process memory otherwise.
	var kv store.Store = store.NewMemoryStore()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Redis connection failed: %v", err)
		}
		kv = store.NewRedisStore(redisClient)
		log.Printf("Using redis store at %s", cfg.RedisAddr)
	}

	// Order history: embedded sqlite when a path is configured.
	var orders repository.OrderRepository = repository.NewMemoryRepository()
	if cfg.SQLitePath != "" {
		repo, err := repository.NewSQLiteRepository(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open order database: %v", err)
		}
		defer repo.Close()
		if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		orders = repo
		log.Printf("Using sqlite order history at %s", cfg.SQLitePath)
	}

	var publisher events.Publisher = events.NewLogPublisher()
	if cfg.KafkaBrokers != "" {
		publisher = events.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ",")...)
		log.Printf("Publishing events to kafka at %s", cfg.KafkaBrokers)
	}
	defer publisher.Close()

	// Catalog ingestion runs once before the server starts and is awaited to
	// completion. Any failure, bad URL included, degrades to an empty catalog;
	// the rest of the application must render that gracefully.
	var loader service.CatalogLoader
	var products []domain.Product
	client, err := sheets.NewClient(cfg.SheetURL)
	if err != nil {
		log.Printf("Catalog feed disabled: %v", err)
	} else {
		loader = client
		products, err = client.Fetch(ctx)
		if err != nil {
			log.Printf("Catalog ingestion failed, starting with empty catalog: %v", err)
			products = nil
		} else {
			log.Printf("Loaded %d products from feed", len(products))
		}
	}

	cat := catalog.New(products)
	svc := service.New(ctx, cat, loader, orders, kv, publisher)

	router := h.NewRouter(svc, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
