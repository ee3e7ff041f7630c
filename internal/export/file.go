package export

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/quantbay/expiry-dispatch/internal/expiry"
)

// File is one named export artifact.
type File struct {
	Name    string
	Content []byte
}

// ExpiryFile serializes a selection as CSV, header included. The filename is
// the lowercased index name joined to the uppercased expiry date:
// nifty_10-JUL-2025.txt.
func ExpiryFile(sel *expiry.Selection, indexName string) (File, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(sel.Rows.Columns); err != nil {
		return File{}, fmt.Errorf("write header: %w", err)
	}
	for _, row := range sel.Rows.Rows {
		if err := w.Write(row); err != nil {
			return File{}, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return File{}, fmt.Errorf("flush csv: %w", err)
	}

	name := strings.ToLower(indexName) + "_" + expiry.FormatDate(sel.Expiry) + ".txt"
	return File{Name: name, Content: buf.Bytes()}, nil
}

// BundleName names the day's archive: EXPIRY_SYMBOLS_10-JUL-2025.zip.
func BundleName(date time.Time) string {
	return "EXPIRY_SYMBOLS_" + expiry.FormatDate(date) + ".zip"
}

// Bundle packs files into a deflate ZIP archive in the order given.
func Bundle(files []File) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", f.Name, err)
		}
		if _, err := w.Write(f.Content); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}
