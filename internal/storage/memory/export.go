package memory

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	v1 "github.com/airliftops/loadmaster/internal/storage/memory/export/v1"
)

// exportJSON writes the plan manifest to a JSON file.
// Caller must hold b.mu.
func (b *Backend) exportJSON(id string) error {
	record, ok := b.plans[id]
	if !ok {
		return fmt.Errorf("flight %s not found", id)
	}

	export := v1.Build(&v1.PlanData{
		Load:   record.Load,
		Result: record.Result,
	})

	// Build filename
	flightID := strings.ReplaceAll(record.Load.ID, " ", "_")
	flightID = strings.ReplaceAll(flightID, ":", "_")
	timestamp := time.Now().UTC().Format("20060102_150405")

	var filename string
	if b.cfg.CompressOutput {
		filename = fmt.Sprintf("%s_%s.json.gz", flightID, timestamp)
	} else {
		filename = fmt.Sprintf("%s_%s.json", flightID, timestamp)
	}

	outputPath := filepath.Join(b.cfg.OutputDir, filename)

	// Ensure output directory exists
	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Write file
	if b.cfg.CompressOutput {
		if err := writeGzipJSON(outputPath, export); err != nil {
			return err
		}
	} else {
		if err := writeJSON(outputPath, export); err != nil {
			return err
		}
	}

	b.lastExportPath = outputPath
	return nil
}

func writeJSON(path string, data v1.Export) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	return encoder.Encode(data)
}

func writeGzipJSON(path string, data v1.Export) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	gzWriter := gzip.NewWriter(f)
	defer gzWriter.Close()

	encoder := json.NewEncoder(gzWriter)
	return encoder.Encode(data)
}
