package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ariefcatur/go-catalog-orders.git/internal/config"
	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
	kafkax "github.com/ariefcatur/go-catalog-orders.git/internal/kafka"
	"github.com/ariefcatur/go-catalog-orders.git/internal/postgres"
	"github.com/ariefcatur/go-catalog-orders.git/internal/projector"
	"github.com/ariefcatur/go-catalog-orders.git/internal/redisx"
	"github.com/ariefcatur/go-catalog-orders.git/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Service
	svc := &projector.Service{
		Orders:      repository.NewOrder(db),
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-projector",
	}

	// Consumer
	group := getenv("PROJECTOR_GROUP", "status-projector")
	workers := mustAtoi(os.Getenv("PROJECTOR_WORKERS"), "8")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, domain.TopicOrderCreated, workers)

	go func() {
		log.Printf("projector consumer started: group=%s topic=%s workers=%d", group, domain.TopicOrderCreated, workers)
		if err := cons.Start(ctx, svc.HandleOrderCreated); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down consumer...")
	cancel()
	time.Sleep(500 * time.Millisecond)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}
