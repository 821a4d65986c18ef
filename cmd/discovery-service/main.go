package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Mawa444/conso-gab-sub005/internal/config"
	"github.com/Mawa444/conso-gab-sub005/internal/position"
	"github.com/Mawa444/conso-gab-sub005/internal/service"
	"github.com/Mawa444/conso-gab-sub005/internal/storage/postgres"
	apihttp "github.com/Mawa444/conso-gab-sub005/internal/transport/http"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// positionSlotKey — ключ durable-слота последней позиции в Redis.
const positionSlotKey = "discovery:last_position"

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting discovery-service", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	initCtx, initCancel := context.WithTimeout(rootCtx, 10*time.Second)
	defer initCancel()

	store, err := postgres.New(initCtx, cfg.DB.URL)
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	log.Info("storage_initialized")

	slot, err := position.NewRedisStore(cfg.Redis.URL, positionSlotKey, cfg.Position.FreshnessTTL)
	if err != nil {
		log.Error("position_slot_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := slot.Close(); cerr != nil {
			log.Warn("position_slot_close_failed", slog.String("err", cerr.Error()))
		}
	}()

	fixes := position.NewPushSource()
	positions := position.New(cfg.Position, fixes, slot)
	positions.Init(rootCtx)

	if err := positions.StartTracking(rootCtx); err != nil {
		log.Warn("position_tracking_unavailable", slog.String("err", err.Error()))
	}
	defer positions.StopTracking()

	svc := service.New(store, *cfg)

	apiHandler := apihttp.NewRouter(apihttp.Deps{
		Service:   svc,
		Positions: positions,
		Fixes:     fixes,
		Config:    *cfg,
	}, apihttp.Options{
		Logger:  log,
		Timeout: cfg.Timeouts.Service,
	})

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
