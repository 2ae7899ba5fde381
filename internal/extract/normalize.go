package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// articleRef matches an inline citation such as "Article 12a T", where T is
// the first letter of the word that follows the citation.
var articleRef = regexp.MustCompile(`\bArticle \s*\d\d?\d?[a-z]?\s*[A-Z]`)

// CleanPass1 drops leading colons left over from the begin marker and
// collapses inline "Article N" citations down to the capital letter after them.
func CleanPass1(s string) string {
	// All leading colons go, not just the first, so a second pass is a no-op.
	s = strings.TrimSpace(s)
	for strings.HasPrefix(s, ":") {
		s = strings.TrimSpace(s[1:])
	}

	// Each replacement removes at least "Article " plus a digit, so the
	// string strictly shrinks and the loop is bounded by its length.
	for limit := len(s); limit > 0; limit-- {
		m := articleRef.FindString(s)
		if m == "" {
			break
		}
		s = strings.ReplaceAll(s, m, m[len(m)-1:])
	}

	return strings.TrimSpace(s)
}

// Normalizer strips structural headings ("Article 4 Scope ...") from the
// start of a sentence.
type Normalizer struct {
	structural map[string]bool
}

func NewNormalizer(structuralTokens []string) *Normalizer {
	set := make(map[string]bool, len(structuralTokens))
	for _, t := range structuralTokens {
		set[t] = true
	}
	return &Normalizer{structural: set}
}

// CleanPass2 keeps only the substantive clause of a sentence that opens with
// a structural label. The result is always whitespace-normalized.
func (n *Normalizer) CleanPass2(s string) string {
	tokens := strings.Fields(s)
	if len(tokens) < 2 || !n.structural[tokens[0]] || !isNumeric(tokens[1]) {
		return strings.Join(tokens, " ")
	}
	if len(tokens) < 3 || !startsUpper(tokens[2]) {
		return strings.Join(tokens[2:], " ")
	}
	if i := nextUpperToken(tokens, 3); i > 2 {
		return strings.Join(tokens[i:], " ")
	}
	return strings.Join(tokens[3:], " ")
}

// nextUpperToken returns the index of the first token at or after start that
// begins with an upper-case letter, or -1.
func nextUpperToken(tokens []string, start int) int {
	for i := start; i < len(tokens); i++ {
		if startsUpper(tokens[i]) {
			return i
		}
	}
	return -1
}

func startsUpper(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

func isNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
