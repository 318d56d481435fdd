package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mamediksunduk/sunduk-relay/internal/config"
	"github.com/mamediksunduk/sunduk-relay/internal/core/ports"
	"github.com/mamediksunduk/sunduk-relay/internal/notify"
	"github.com/mamediksunduk/sunduk-relay/internal/relay"
	"github.com/mamediksunduk/sunduk-relay/internal/vk"
)

func main() {
	godotenv.Load()
	fmt.Println("🤖 Sunduk Relay starting...")

	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := vk.NewClient(cfg.BotToken, cfg.UserToken, cfg.ChatID, logger)

	messengers := []ports.Messenger{client}
	if cfg.Telegram.Enabled {
		tg, err := notify.NewTelegramMessenger(cfg.TelegramToken, cfg.Telegram.ChatID)
		if err != nil {
			logger.Fatal("telegram mirror setup failed", zap.Error(err))
		}
		messengers = append(messengers, tg)
		fmt.Println("📨 Telegram mirror enabled")
	}

	sink := notify.NewDispatcher(logger, messengers...)
	pipeline := relay.NewPipeline(client, sink, relay.NewComposer(cfg.LinkHost), logger)

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Error("metrics server stopped", zap.Error(err))
			}
		}()
		fmt.Printf("📊 Metrics on %s\n", cfg.MetricsAddr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller := vk.NewLongPoller(client, cfg.GroupID, cfg.Wait, pipeline.Handle, logger)
	fmt.Println("🚀 Relay operational.")

	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("long poll stopped", zap.Error(err))
	}
	logger.Info("shutting down")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
