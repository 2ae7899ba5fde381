package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/regextract/internal/document"
	"github.com/dgallion1/regextract/internal/rules"
)

// SentenceSeparator joins clean sentences in a summarized span.
const SentenceSeparator = "\n\n\n"

// Stats are the per-document length metrics shared by all of its rows.
type Stats struct {
	Words     int
	Sentences int
}

// Sentences splits a summarized span back into its clean sentences. A
// sentence that pass 2 reduced to nothing stays in the list as "" and still
// counts toward the document's sentence total; an empty span has none.
func Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	out := strings.Split(text, SentenceSeparator)
	for i, s := range out {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

// WordCount counts substantive words: punctuation is stripped from each
// token, then stopwords and short tokens are dropped.
func WordCount(text string, r rules.Rules) int {
	stop := make(map[string]bool, len(r.Stopwords))
	for _, w := range r.Stopwords {
		stop[strings.ToLower(w)] = true
	}

	count := 0
	for _, tok := range strings.Fields(text) {
		tok = strings.Map(keepWordRune, tok)
		if stop[strings.ToLower(tok)] || utf8.RuneCountInString(tok) < r.MinWordLength {
			continue
		}
		count++
	}
	return count
}

func keepWordRune(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' {
		return r
	}
	return -1
}

// DocLengths computes word and sentence counts over the whole summarized span,
// before any per-row filtering.
func DocLengths(text string, r rules.Rules) Stats {
	return Stats{
		Words:     WordCount(text, r),
		Sentences: len(Sentences(text)),
	}
}

// IdentifyInfo turns a summarized span into output rows. Sentences that are
// near-duplicates of excluded boilerplate, or that carry no deontic marker,
// produce no row.
func (e *Extractor) IdentifyInfo(filename, text string) []document.Row {
	stats := DocLengths(text, e.rules)
	id := document.IDFor(filename)
	format := document.FormatFor(filename)

	var rows []document.Row
	for _, sent := range Sentences(text) {
		if e.isBoilerplate(sent) {
			continue
		}
		tag := DeonticTag(sent, e.rules.Deontics)
		if tag == NoDeontic {
			continue
		}
		rows = append(rows, document.Row{
			CELEX:     id,
			Sentence:  sent,
			Deontic:   tag,
			WordCount: stats.Words,
			SentCount: stats.Sentences,
			Format:    format,
		})
	}
	return rows
}

func (e *Extractor) isBoilerplate(sent string) bool {
	for _, p := range e.rules.ExcludedPhrases {
		if e.scorer.Ratio(sent, p) >= e.rules.SimilarityThreshold {
			return true
		}
	}
	return false
}
