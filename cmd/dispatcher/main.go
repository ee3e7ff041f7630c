package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quantbay/expiry-dispatch/internal/config"
	"github.com/quantbay/expiry-dispatch/internal/dispatch"
	"github.com/quantbay/expiry-dispatch/internal/expiry"
	"github.com/quantbay/expiry-dispatch/internal/feed"
	"github.com/quantbay/expiry-dispatch/internal/scheduler"
	"github.com/quantbay/expiry-dispatch/internal/telegram"
	"github.com/quantbay/expiry-dispatch/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/dispatcher.yaml", "path to config file")
	once := flag.Bool("once", false, "run the expiry dispatch immediately and exit")
	force := flag.Bool("force", false, "dispatch every resolved expiry regardless of date")
	dateStr := flag.String("date", "", "forced reference date (DD-MMM-YYYY) for dry runs")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting dispatcher",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *force {
		cfg.Dispatch.ForceExpiryToday = true
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("failed to load timezone", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"indices", len(cfg.Indices),
		"timezone", cfg.Schedule.Timezone,
		"force", cfg.Dispatch.ForceExpiryToday,
	)

	var opts []dispatch.Option
	if *dateStr != "" {
		ref, err := expiry.ParseDate(*dateStr, loc)
		if err != nil {
			logger.Error("invalid -date value", "date", *dateStr, "error", err)
			os.Exit(1)
		}
		logger.Warn("reference date forced", "date", expiry.FormatDate(ref))
		opts = append(opts, dispatch.WithClock(func() time.Time { return ref }))
	}

	client := feed.NewClient(
		feed.WithLogger(logger),
		feed.WithTimeout(cfg.Sources.Timeout),
	)
	sender := telegram.New(
		cfg.Telegram.BotToken,
		cfg.Telegram.ChatID,
		telegram.WithLogger(logger),
	)
	dispatcher := dispatch.New(cfg, client, sender, logger, opts...)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *once {
		if err := dispatcher.Run(ctx); err != nil {
			logger.Error("dispatch failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Daemon mode: schedule both daily jobs.
	scripJob := dispatch.NewScripJob(cfg, client, sender, logger)

	sched := scheduler.New(loc, logger)
	if err := sched.Daily(cfg.Schedule.DispatchAt, "expiry-dispatch", dispatcher); err != nil {
		logger.Error("failed to schedule job", "error", err)
		os.Exit(1)
	}
	if err := sched.Daily(cfg.Schedule.ScripMasterAt, "scrip-master", scripJob); err != nil {
		logger.Error("failed to schedule job", "error", err)
		os.Exit(1)
	}
	sched.Start()

	logger.Info("dispatcher running",
		"dispatch_at", cfg.Schedule.DispatchAt,
		"scrip_master_at", cfg.Schedule.ScripMasterAt,
	)

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")
	sched.Stop()
	logger.Info("dispatcher stopped")
}
