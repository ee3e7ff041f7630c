package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/quantbay/expiry-dispatch/internal/config"
	"github.com/quantbay/expiry-dispatch/internal/expiry"
	"github.com/quantbay/expiry-dispatch/internal/export"
	"github.com/quantbay/expiry-dispatch/internal/model"
)

// MasterSource provides symbol master tables.
type MasterSource interface {
	SymbolMaster(ctx context.Context, url string) (*model.Table, error)
}

// DocumentSender delivers one named artifact.
type DocumentSender interface {
	SendDocument(ctx context.Context, name string, content []byte) error
}

// Dispatcher runs the daily expiry check: download the symbol masters,
// resolve each configured index, and ship the same-day selections as one
// ZIP bundle.
type Dispatcher struct {
	cfg    *config.Config
	source MasterSource
	sender DocumentSender
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock overrides the wall clock, for dry runs against a forced
// reference date.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// New creates a Dispatcher. A nil logger falls back to slog.Default.
func New(cfg *config.Config, source MasterSource, sender DocumentSender, logger *slog.Logger, opts ...Option) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		cfg:    cfg,
		source: source,
		sender: sender,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes one dispatch cycle. A day without any applicable expiry is a
// clean no-op; download and delivery failures are returned and abort the run.
func (d *Dispatcher) Run(ctx context.Context) error {
	runID := uuid.New().String()
	log := d.logger.With("run_id", runID)

	loc, err := d.cfg.Location()
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}
	today := expiry.Midnight(d.now(), loc)

	log.Info("dispatch run starting", "date", expiry.FormatDate(today))
	if d.cfg.Dispatch.ForceExpiryToday {
		log.Warn("force mode enabled: every resolved expiry will be dispatched")
	}

	masters, err := d.loadMasters(ctx, log)
	if err != nil {
		return err
	}

	var files []export.File
	for _, idx := range d.cfg.Indices {
		sel, err := expiry.Resolve(masters[idx.Exchange], idx, today)
		if errors.Is(err, expiry.ErrNoExpiry) {
			log.Debug("no applicable expiry", "index", idx.Name)
			continue
		}
		if err != nil {
			return fmt.Errorf("resolve %s: %w", idx.Name, err)
		}

		if sel.Dropped > 0 {
			log.Warn("dropped rows with unparsable expiry",
				"index", idx.Name,
				"rows", sel.Dropped,
			)
		}

		if !d.cfg.Dispatch.ForceExpiryToday && !sel.Expiry.Equal(today) {
			log.Info("nearest expiry is not today",
				"index", idx.Name,
				"expiry", expiry.FormatDate(sel.Expiry),
			)
			continue
		}

		f, err := export.ExpiryFile(sel, idx.Name)
		if err != nil {
			return fmt.Errorf("build export for %s: %w", idx.Name, err)
		}
		files = append(files, f)

		log.Info("expiry detected",
			"index", idx.Name,
			"file", f.Name,
			"rows", sel.Rows.Len(),
		)
	}

	if len(files) == 0 {
		log.Info("no expiry today, exiting cleanly")
		return nil
	}

	archive, err := export.Bundle(files)
	if err != nil {
		return fmt.Errorf("bundle exports: %w", err)
	}
	name := export.BundleName(today)

	if d.cfg.Dispatch.KeepLocal {
		if err := os.WriteFile(name, archive, 0o644); err != nil {
			log.Warn("keep_local write failed", "name", name, "error", err)
		}
	}

	if err := d.sender.SendDocument(ctx, name, archive); err != nil {
		return fmt.Errorf("send bundle: %w", err)
	}

	log.Info("bundle sent", "name", name, "files", len(files))
	return nil
}

// loadMasters downloads each exchange's symbol master once, in index
// configuration order.
func (d *Dispatcher) loadMasters(ctx context.Context, log *slog.Logger) (map[string]*model.Table, error) {
	masters := make(map[string]*model.Table)
	for _, idx := range d.cfg.Indices {
		if _, ok := masters[idx.Exchange]; ok {
			continue
		}

		url := d.cfg.Sources.NFOURL
		if idx.Exchange == config.ExchangeBFO {
			url = d.cfg.Sources.BFOURL
		}

		log.Info("loading symbol master", "exchange", idx.Exchange)
		tab, err := d.source.SymbolMaster(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("download %s symbol master: %w", idx.Exchange, err)
		}
		masters[idx.Exchange] = tab
	}
	return masters, nil
}
