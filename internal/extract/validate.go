package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/regextract/internal/rules"
)

// RejectReason says why a sentence was judged non-regulatory.
type RejectReason string

const (
	Accepted          RejectReason = ""
	RejectEmpty       RejectReason = "empty"
	RejectLeadingChar RejectReason = "leading_punctuation_or_digit"
	RejectFurniture   RejectReason = "page_furniture"
	RejectTooShort    RejectReason = "too_short"
	RejectBoilerplate RejectReason = "excluded_phrase"
	RejectLeadIn      RejectReason = "excluded_start_phrase"
)

// punctuation mirrors the ASCII punctuation class.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Filter decides whether a pass-1 sentence could be a regulatory statement.
type Filter struct {
	rules      rules.Rules
	normalizer *Normalizer
	excluded   []string
	leadIns    []string
	headers    []string
}

func NewFilter(r rules.Rules, n *Normalizer) *Filter {
	return &Filter{
		rules:      r,
		normalizer: n,
		excluded:   lowerAll(r.ExcludedPhrases),
		leadIns:    lowerAll(r.ExcludedStartPhrases),
		headers:    lowerAll(r.JournalHeaders),
	}
}

// Valid reports whether s passes every rule.
func (f *Filter) Valid(s string) bool {
	return f.Reason(s) == Accepted
}

// Reason returns the first rule s breaks, or Accepted. The rules are
// independent; any single one disqualifies the sentence.
func (f *Filter) Reason(s string) RejectReason {
	if s == "" {
		return RejectEmpty
	}
	if first, _ := utf8.DecodeRuneInString(s); strings.ContainsRune(punctuation, first) || (first >= '0' && first <= '9') {
		return RejectLeadingChar
	}

	lower := strings.ToLower(s)
	trimmedLower := strings.TrimSpace(lower)
	for _, h := range f.headers {
		if strings.HasPrefix(trimmedLower, h) {
			return RejectFurniture
		}
	}
	trimmed := strings.TrimSpace(s)
	for _, m := range f.rules.PageMarkers {
		if strings.HasPrefix(trimmed, m) {
			return RejectFurniture
		}
	}

	if utf8.RuneCountInString(strings.ReplaceAll(s, " ", "")) < f.rules.MinChars {
		return RejectTooShort
	}

	cleaned := strings.ToLower(f.normalizer.CleanPass2(s))
	for _, p := range f.excluded {
		if strings.Contains(lower, p) || strings.Contains(cleaned, p) {
			return RejectBoilerplate
		}
	}

	for _, p := range f.leadIns {
		if strings.HasPrefix(lower, p) {
			return RejectLeadIn
		}
	}
	return Accepted
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
