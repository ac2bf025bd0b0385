package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/ariefcatur/go-inventory-orders.git/internal/auth"
	"github.com/ariefcatur/go-inventory-orders.git/internal/catalog"
	"github.com/ariefcatur/go-inventory-orders.git/internal/config"
	"github.com/ariefcatur/go-inventory-orders.git/internal/dashboard"
	"github.com/ariefcatur/go-inventory-orders.git/internal/httpx"
	kafkax "github.com/ariefcatur/go-inventory-orders.git/internal/kafka"
	"github.com/ariefcatur/go-inventory-orders.git/internal/orders"
	"github.com/ariefcatur/go-inventory-orders.git/internal/postgres"
	"github.com/ariefcatur/go-inventory-orders.git/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producers
	pCreated := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderCreated, 1024)
	pCreated.Start(ctx)
	pCancelled := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderCancelled, 1024)
	pCancelled.Start(ctx)

	// Services
	tokens := &auth.Tokens{Secret: []byte(cfg.JWTSecret), AccessTTL: cfg.AccessTTL}
	orderSvc := &orders.Service{
		Store:       &orders.PgStore{DB: db},
		Events:      pCreated,
		EventsAbort: pCancelled,
		ServiceName: cfg.ServiceName,
	}
	productRepo := &catalog.Repo{DB: db}

	// Router
	router := httpx.NewRouter()
	ah := &httpx.AuthHandler{
		Repo:    &auth.Repo{DB: db},
		Tokens:  tokens,
		Refresh: &auth.RefreshStore{RDB: rdb, TTL: cfg.RefreshTTL},
	}
	ah.Register(router)

	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokens))
		(&httpx.ProductsHandler{Repo: productRepo}).Register(r)
		(&httpx.OrdersHandler{Service: orderSvc}).Register(r)
		(&httpx.DashboardHandler{Service: &dashboard.Service{DB: db, RDB: rdb}}).Register(r)
		(&httpx.ExportHandler{Products: productRepo, Orders: orderSvc}).Register(r)
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	pCreated.Close()
	pCancelled.Close()
	pCreated.WaitClosed()
	pCancelled.WaitClosed()
}
