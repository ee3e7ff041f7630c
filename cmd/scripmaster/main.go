package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/quantbay/expiry-dispatch/internal/config"
	"github.com/quantbay/expiry-dispatch/internal/dispatch"
	"github.com/quantbay/expiry-dispatch/internal/feed"
	"github.com/quantbay/expiry-dispatch/internal/telegram"
	"github.com/quantbay/expiry-dispatch/internal/version"
)

// scripmaster is the one-shot variant of the scrip-master job: download the
// broker scrip master, build the sorted NFO/BFO workbook, send it to the
// configured chat.
func main() {
	configPath := flag.String("config", "configs/dispatcher.yaml", "path to config file")
	keep := flag.Bool("keep", false, "also write the workbook to the working directory")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *keep {
		cfg.Dispatch.KeepLocal = true
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

	job := dispatch.NewScripJob(cfg, client, sender, logger)
	if err := job.Run(context.Background()); err != nil {
		logger.Error("scrip master job failed", "error", err)
		os.Exit(1)
	}
}
