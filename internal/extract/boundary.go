package extract

import "strings"

// softHyphenGap is the soft-hyphen + space ligature left behind by PDF line breaks.
const softHyphenGap = "\u00ad "

// OperativeSpan returns the text strictly between a begin marker and the
// nearest following end marker. Pairs are tried begin-major in declared order
// and the first non-empty span wins; "" means no pair matched.
func OperativeSpan(text string, begin, end []string) string {
	for _, b := range begin {
		for _, e := range end {
			if span := between(text, b, e); span != "" {
				return span
			}
		}
	}
	return ""
}

// between scans occurrences of b left to right and returns the text up to the
// first e after the earliest b that has one.
func between(text, b, e string) string {
	if b == "" || e == "" {
		return ""
	}
	offset := 0
	for {
		i := strings.Index(text[offset:], b)
		if i < 0 {
			return ""
		}
		start := offset + i + len(b)
		j := strings.Index(text[start:], e)
		if j < 0 {
			// No end marker after this begin; later begins cannot have one either.
			return ""
		}
		if j > 0 {
			return text[start : start+j]
		}
		offset = offset + i + 1
	}
}

// Sanitize flattens a span for the sentence segmenter.
func Sanitize(span string) string {
	span = strings.ReplaceAll(span, "\n", " ")
	return strings.ReplaceAll(span, softHyphenGap, "")
}
