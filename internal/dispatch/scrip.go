package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/quantbay/expiry-dispatch/internal/config"
	"github.com/quantbay/expiry-dispatch/internal/export"
	"github.com/quantbay/expiry-dispatch/internal/model"
)

// ScripSource provides the broker scrip master.
type ScripSource interface {
	ScripMaster(ctx context.Context, url string) ([]model.Scrip, error)
}

// ScripJob downloads the scrip master and ships it as a sorted two-sheet
// workbook. Unlike the expiry dispatch it sends every day it runs.
type ScripJob struct {
	cfg    *config.Config
	source ScripSource
	sender DocumentSender
	logger *slog.Logger
	now    func() time.Time
}

// NewScripJob creates a ScripJob. A nil logger falls back to slog.Default.
func NewScripJob(cfg *config.Config, source ScripSource, sender DocumentSender, logger *slog.Logger) *ScripJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScripJob{
		cfg:    cfg,
		source: source,
		sender: sender,
		logger: logger,
		now:    time.Now,
	}
}

// Run executes one scrip-master cycle.
func (j *ScripJob) Run(ctx context.Context) error {
	loc, err := j.cfg.Location()
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	scrips, err := j.source.ScripMaster(ctx, j.cfg.Sources.ScripMasterURL)
	if err != nil {
		return fmt.Errorf("download scrip master: %w", err)
	}
	j.logger.Info("scrip master downloaded", "records", len(scrips))

	f, err := export.Workbook(scrips, j.now().In(loc))
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}

	if j.cfg.Dispatch.KeepLocal {
		if err := os.WriteFile(f.Name, f.Content, 0o644); err != nil {
			j.logger.Warn("keep_local write failed", "name", f.Name, "error", err)
		}
	}

	if err := j.sender.SendDocument(ctx, f.Name, f.Content); err != nil {
		return fmt.Errorf("send workbook: %w", err)
	}

	j.logger.Info("workbook sent", "name", f.Name)
	return nil
}
