package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/billsplit/internal/config"
	"github.com/mmynk/billsplit/internal/middleware"
	"github.com/mmynk/billsplit/internal/receipt"
	"github.com/mmynk/billsplit/internal/service"
	"github.com/mmynk/billsplit/internal/session"
	"github.com/mmynk/billsplit/internal/storage"
	"github.com/mmynk/billsplit/internal/storage/memory"
	"github.com/mmynk/billsplit/internal/storage/sqlite"
	"github.com/mmynk/billsplit/pkg/api/v1/apiv1connect"
	"github.com/mmynk/billsplit/pkg/logging"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level)

	store, err := openStore(cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	bills := session.NewItemized(ctx, store, cfg.Storage.BillKey)
	discount := session.NewFlat(ctx, store, cfg.Storage.DiscountKey)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	interceptors := connect.WithInterceptors(metrics.Interceptor(), middleware.LoggingInterceptor())

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.CORS(corsConfig(cfg.Server)))

	// Register Connect services
	billPath, billHandler := apiv1connect.NewBillServiceHandler(
		service.NewBillService(bills, cfg.Upload.MaxBytes), interceptors)
	r.Mount(billPath, billHandler)

	discountPath, discountHandler := apiv1connect.NewDiscountServiceHandler(
		service.NewDiscountService(discount), interceptors)
	r.Mount(discountPath, discountHandler)

	r.Get("/receipt/itemized.png", receipt.Handler(receipt.ItemizedBuilder(bills), time.Now))
	r.Get("/receipt/flat.png", receipt.Handler(receipt.FlatBuilder(discount), time.Now))

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})

	staticDir, err := filepath.Abs(cfg.Server.StaticPath)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	slog.Info("Serving static files", "path", staticDir)
	r.NotFound(staticHandler(staticDir))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(r, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}

func openStore(cfg config.StorageConfig) (storage.KV, error) {
	if cfg.Path == "" {
		slog.Warn("No storage path configured, bills are kept in memory only")
		return memory.New(), nil
	}
	store, err := sqlite.New(cfg.Path)
	if err != nil {
		return nil, err
	}
	slog.Info("Storage initialized", "database", cfg.Path)
	return store, nil
}

func corsConfig(cfg config.ServerConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	cors.AllowedOrigins = cfg.AllowedOrigins
	return cors
}

// staticHandler serves the frontend, falling back to index.html for
// unknown paths.
func staticHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/billsplit.v1.") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	}
}
