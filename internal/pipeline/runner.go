// Package pipeline drives the extractor over a directory of documents.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dgallion1/regextract/internal/document"
	"github.com/dgallion1/regextract/internal/extract"
	"github.com/dgallion1/regextract/internal/parser"
)

// Runner processes documents strictly one at a time.
type Runner struct {
	extractor *extract.Extractor
	parseOpts parser.Options
	stats     *Stats
	log       *slog.Logger
}

func NewRunner(e *extract.Extractor, opts parser.Options, stats *Stats, log *slog.Logger) *Runner {
	if stats == nil {
		stats = NewStats(time.Hour)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		extractor: e,
		parseOpts: opts,
		stats:     stats,
		log:       log,
	}
}

// Stats returns the runner's processing statistics.
func (r *Runner) Stats() *Stats {
	return r.stats
}

// ListDocuments returns the names of the regular .pdf and .html files in dir,
// in directory-listing order.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !parser.IsSupportedExtension(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Run extracts the rows of every document in dir. A parse failure aborts the
// run; documents that yield no rows do not.
func (r *Runner) Run(ctx context.Context, dir string) ([]document.Row, error) {
	names, err := ListDocuments(dir)
	if err != nil {
		return nil, err
	}
	r.log.Info("processing documents", "dir", dir, "documents", len(names))

	var rows []document.Row
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return rows, err
		}
		docRows, err := r.ProcessFile(filepath.Join(dir, name))
		if err != nil {
			return rows, err
		}
		r.log.Info("document done", "n", i+1, "of", len(names), "file", name, "rows", len(docRows))
		rows = append(rows, docRows...)
	}
	return rows, nil
}

// ProcessFile reads one document in full, releasing the file before
// extraction starts.
func (r *Runner) ProcessFile(path string) ([]document.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return r.ProcessReader(bytes.NewReader(data), filepath.Base(path))
}

// ProcessReader parses a document from r and extracts its rows.
func (r *Runner) ProcessReader(rd io.Reader, filename string) ([]document.Row, error) {
	start := time.Now()

	p, err := parser.ForFile(filename, r.parseOpts)
	if err != nil {
		return nil, err
	}
	text, err := p.Parse(rd, filename)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	rows := r.extractor.Process(document.New(filename, text))
	r.stats.Record(time.Since(start).Milliseconds(), len(rows))
	return rows, nil
}
