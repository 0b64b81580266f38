// Package csvio reads and writes notable datasets as flat CSV files
// with a header row. Paths ending in .gz are compressed transparently.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"notables/pkg/models"
)

// WriteNotables writes rows to path, overwriting any existing file.
func WriteNotables(path string, rows []models.Notable) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(models.CSVHeader()); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for i := range rows {
		if err := cw.Write(rows[i].Record()); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush csv: %w", err)
	}

	if gz != nil {
		if err := gz.Close(); err != nil {
			f.Close()
			return fmt.Errorf("close gzip stream: %w", err)
		}
	}
	return f.Close()
}

// ReadNotables reads the full dataset at path into memory. Columns are
// matched by header name, so extra columns and reordered columns are
// tolerated; missing required columns are not.
func ReadNotables(path string) ([]models.Notable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []models.Notable
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		t, err := models.ParseEventTime(rec[idx["_time"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, models.Notable{
			Time:        t,
			Src:         rec[idx["src"]],
			Dest:        rec[idx["dest"]],
			Signature:   rec[idx["signature"]],
			Category:    rec[idx["category"]],
			FileName:    rec[idx["file_name"]],
			Severity:    rec[idx["severity"]],
			User:        rec[idx["user"]],
			StatusLabel: rec[idx["status_label"]],
		})
	}
	return rows, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, want := range models.CSVHeader() {
		if _, ok := idx[want]; !ok {
			return nil, fmt.Errorf("missing column %q in header", want)
		}
	}
	return idx, nil
}
