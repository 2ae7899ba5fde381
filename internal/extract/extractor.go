// Package extract finds candidate regulatory sentences in the operative part
// of EU legislative acts and tags them with their deontic markers.
package extract

import (
	"io"
	"log/slog"
	"strings"

	"github.com/dgallion1/regextract/internal/document"
	"github.com/dgallion1/regextract/internal/rules"
	"github.com/dgallion1/regextract/internal/segment"
	"github.com/dgallion1/regextract/internal/similarity"
)

// Extractor runs the sentence pipeline for one document at a time. It keeps
// no per-document state and is safe for concurrent use.
type Extractor struct {
	rules      rules.Rules
	segmenter  segment.Segmenter
	scorer     similarity.Scorer
	normalizer *Normalizer
	filter     *Filter
	log        *slog.Logger
}

func New(r rules.Rules, seg segment.Segmenter, scorer similarity.Scorer, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	n := NewNormalizer(r.StructuralTokens)
	return &Extractor{
		rules:      r,
		segmenter:  seg,
		scorer:     scorer,
		normalizer: n,
		filter:     NewFilter(r, n),
		log:        log,
	}
}

// Rules returns the tables the extractor was built with.
func (e *Extractor) Rules() rules.Rules {
	return e.rules
}

// Summarize segments a sanitized span and keeps the sentences that survive
// both normalization passes and the validity filter, in order.
func (e *Extractor) Summarize(span string) string {
	var kept []string
	for _, raw := range e.segmenter.Segment(span) {
		s := CleanPass1(raw)
		if reason := e.filter.Reason(s); reason != Accepted {
			e.log.Debug("sentence rejected", "reason", string(reason), "sentence", truncate(s, 80))
			continue
		}
		kept = append(kept, e.normalizer.CleanPass2(s))
	}
	return strings.Join(kept, SentenceSeparator)
}

// Process extracts the rows of a single document. A document without an
// operative span yields no rows.
func (e *Extractor) Process(doc document.Document) []document.Row {
	log := e.log.With("celex", doc.ID, "format", string(doc.Format))

	span := OperativeSpan(doc.Text, e.rules.BeginMarkers, e.rules.EndMarkers)
	if span == "" {
		log.Info("no operative span found")
		return nil
	}

	summary := e.Summarize(Sanitize(span))
	rows := e.IdentifyInfo(doc.Filename, summary)
	log.Debug("document processed", "span_bytes", len(span), "sentences", len(Sentences(summary)), "rows", len(rows))
	return rows
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
