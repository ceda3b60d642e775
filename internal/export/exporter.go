package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ca-srg/brandrank/internal/types"
)

// Exporter writes ranking check results as delimited text.
type Exporter struct{}

func New() *Exporter {
	return &Exporter{}
}

// WriteResults writes the ranked list for one check as CSV. The brand_match
// column marks the row the brand was found on, if any.
func (e *Exporter) WriteResults(w io.Writer, run *types.CheckRun) error {
	if run == nil {
		return fmt.Errorf("check run cannot be nil")
	}

	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"rank", "result", "brand_match"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range run.Results {
		matched := run.Match.Found && run.Match.Rank == result.Rank
		record := []string{
			strconv.Itoa(result.Rank),
			result.Text,
			strconv.FormatBool(matched),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}

// ExportFile writes the check results to path, creating parent directories.
// An empty path falls back to a timestamped name derived from the keyword.
func (e *Exporter) ExportFile(path string, run *types.CheckRun) (string, error) {
	if run == nil {
		return "", fmt.Errorf("check run cannot be nil")
	}

	if path == "" {
		path = e.DefaultFilename(run.Keyword)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := e.WriteResults(f, run); err != nil {
		return "", err
	}

	return path, nil
}

// DefaultFilename builds a timestamped CSV filename from the keyword.
func (e *Exporter) DefaultFilename(keyword string) string {
	return fmt.Sprintf("%s_%s.csv", time.Now().Format("2006-01-02"), sanitizeFilename(keyword))
}

var (
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f\x7f-\x9f\s]`)
	repeatedUnderscores  = regexp.MustCompile(`_+`)
)

// sanitizeFilename replaces characters that are unsafe on common filesystems.
func sanitizeFilename(name string) string {
	clean := invalidFilenameChars.ReplaceAllString(name, "_")
	clean = repeatedUnderscores.ReplaceAllString(clean, "_")
	clean = strings.Trim(clean, "_ ")

	if len(clean) > 100 {
		clean = clean[:100]
	}
	if clean == "" {
		clean = "ranking"
	}

	return clean
}
