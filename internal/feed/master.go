package feed

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/quantbay/expiry-dispatch/internal/model"
)

// SymbolMaster downloads a zipped symbol master and parses it into a table.
//
// The archive is expected to contain a single CSV entry. Exchange files pad
// rows with a trailing comma, which would otherwise surface as a phantom
// unnamed column, so each line is trimmed before parsing.
func (c *Client) SymbolMaster(ctx context.Context, url string) (*model.Table, error) {
	body, err := c.download(ctx, url)
	if err != nil {
		return nil, err
	}

	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, fmt.Errorf("open zip from %s: %w", url, err)
	}
	if len(zr.File) == 0 {
		return nil, fmt.Errorf("zip from %s has no entries", url)
	}

	f, err := zr.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("open zip entry %s: %w", zr.File[0].Name, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read zip entry %s: %w", zr.File[0].Name, err)
	}

	table, err := parseCSV(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", zr.File[0].Name, err)
	}

	c.logger.Debug("symbol master loaded",
		"url", url,
		"entry", zr.File[0].Name,
		"columns", len(table.Columns),
		"rows", table.Len(),
	)

	return table, nil
}

// ScripMaster downloads and decodes the broker scrip-master JSON.
func (c *Client) ScripMaster(ctx context.Context, url string) ([]model.Scrip, error) {
	body, err := c.download(ctx, url)
	if err != nil {
		return nil, err
	}

	var scrips []model.Scrip
	if err := json.Unmarshal(body, &scrips); err != nil {
		return nil, fmt.Errorf("decode scrip master: %w", err)
	}

	c.logger.Debug("scrip master loaded", "url", url, "records", len(scrips))

	return scrips, nil
}

// parseCSV reads a header row plus data rows, stripping the trailing comma
// the exchange appends to every line.
func parseCSV(raw []byte) (*model.Table, error) {
	lines := strings.Split(string(raw), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(strings.TrimRight(line, "\r"), ",")
	}
	cleaned := strings.Join(lines, "\n")

	r := csv.NewReader(strings.NewReader(cleaned))
	r.FieldsPerRecord = -1 // masters are occasionally ragged

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv has no header row")
	}

	return &model.Table{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}
