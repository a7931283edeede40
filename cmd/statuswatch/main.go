package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nkravets/statuswatch/internal/config"
	"github.com/nkravets/statuswatch/internal/httpapi"
	"github.com/nkravets/statuswatch/internal/logging"
	"github.com/nkravets/statuswatch/internal/monitor"
	"github.com/nkravets/statuswatch/internal/notify"
	"github.com/nkravets/statuswatch/internal/probe"
	"github.com/nkravets/statuswatch/internal/state"
)

func main() {
	_ = godotenv.Load()

	// Credentials are checked before anything can touch the network.
	creds, err := config.TelegramFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatal(err)
	}
	cfg.Telegram = creds

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	states := state.NewMemory(cfg.Targets)
	checker := probe.NewHTTPChecker(logger, probe.DefaultTimeout)
	telegram := notify.NewTelegram(creds.APIURL, creds.Token, creds.ChatID, logger)

	mon := monitor.New(logger, checker, notify.Multi{telegram}, states, cfg.Targets, cfg.Interval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.APIAddr != "" {
		api := httpapi.NewServer(logger, states)
		go func() {
			logger.Info("api_listen", zap.String("addr", cfg.APIAddr))
			if err := http.ListenAndServe(cfg.APIAddr, api.Router()); err != nil {
				logger.Error("api_error", zap.Error(err))
			}
		}()
	}

	logger.Info("monitor_start",
		zap.Int("targets", len(cfg.Targets)),
		zap.Duration("interval", cfg.Interval),
	)

	_ = mon.Run(ctx)
	logger.Info("stopped_by_user")
}
