// Package similarity scores how close two strings are on a 0-100 scale.
package similarity

import "math"

// Scorer returns an integer similarity between 0 (unrelated) and 100 (identical).
type Scorer interface {
	Ratio(a, b string) int
}

// Indel scores by insertion/deletion distance, where a substitution costs
// two edits: 100 * (la+lb-indel) / (la+lb), with indel = la+lb-2*LCS over
// runes. Halves round to even.
type Indel struct{}

func (Indel) Ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	common := lcsLen(ra, rb)
	return int(math.RoundToEven(100 * float64(2*common) / float64(total)))
}

// lcsLen is the length of the longest common subsequence, using a single
// row of the dynamic-programming table.
func lcsLen(a, b []rune) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	row := make([]int, len(b)+1)
	for _, ca := range a {
		diag := 0
		for j, cb := range b {
			up := row[j+1]
			switch {
			case ca == cb:
				row[j+1] = diag + 1
			case row[j] > up:
				row[j+1] = row[j]
			}
			diag = up
		}
	}
	return row[len(b)]
}
