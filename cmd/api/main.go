package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/ariefcatur/go-catalog-orders.git/internal/config"
	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
	"github.com/ariefcatur/go-catalog-orders.git/internal/httpx"
	kafkax "github.com/ariefcatur/go-catalog-orders.git/internal/kafka"
	"github.com/ariefcatur/go-catalog-orders.git/internal/postgres"
	"github.com/ariefcatur/go-catalog-orders.git/internal/redisx"
	"github.com/ariefcatur/go-catalog-orders.git/internal/repository"
	"github.com/ariefcatur/go-catalog-orders.git/internal/service"
)

func main() {
	_ = godotenv.Load()

	// prices and totals go over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, domain.TopicOrderCreated, 1024)
	prod.Start(ctx)

	// Repos, services, handlers
	catalogRepo := repository.NewCatalog(db)
	orderRepo := repository.NewOrder(db)

	router := httpx.NewRouter()
	ph := &httpx.ProductsHandler{
		Service: service.NewCatalogService(catalogRepo),
	}
	ph.Register(router)
	oh := &httpx.OrdersHandler{
		Service:     service.NewOrderService(orderRepo, catalogRepo),
		Producer:    prod,
		Redis:       rdb,
		ServiceName: cfg.ServiceName,
	}
	oh.Register(router)
	hh := &httpx.HealthHandler{DB: db}
	hh.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close() // closes the inbox so the loop flushes and exits
	prod.WaitClosed()
}
