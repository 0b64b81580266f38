package clusterjson

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"notables/internal/analyzer"
	"notables/internal/logger"
)

// Writer exports clusters to a JSON lines file.
type Writer struct {
	file    *os.File
	encoder *json.Encoder
}

// NewWriter creates a JSONL writer for clusters.
func NewWriter(path string) (*Writer, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	logger.Infof("Cluster JSON writer initialized: %s", path)
	return &Writer{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// WriteClusters writes all clusters, one object per line.
func (w *Writer) WriteClusters(clusters []analyzer.Cluster) error {
	for _, c := range clusters {
		if err := w.encoder.Encode(c); err != nil {
			return fmt.Errorf("failed to encode cluster: %w", err)
		}
	}
	return nil
}

// Close closes the output file.
func (w *Writer) Close() error {
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}
