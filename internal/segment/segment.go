// Package segment splits running text into sentences.
package segment

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Segmenter turns a text blob into an ordered list of sentences.
// Implementations must be deterministic for identical input.
type Segmenter interface {
	Segment(text string) []string
}

// Punkt segments English text with a pre-trained Punkt model, which knows
// common abbreviations ("Art.", "No.", "e.g.") and does not break on them.
type Punkt struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunkt loads the bundled English training data.
func NewPunkt() (*Punkt, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &Punkt{tokenizer: tok}, nil
}

func (p *Punkt) Segment(text string) []string {
	var out []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Simple breaks after '.', '!' or '?' when followed by a space.
type Simple struct{}

func (Simple) Segment(text string) []string {
	var out []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(text) && text[i+1] == ' ' {
			if s := strings.TrimSpace(current.String()); s != "" {
				out = append(out, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// ByName returns the segmenter registered under name ("punkt" or "simple").
func ByName(name string) (Segmenter, error) {
	switch strings.ToLower(name) {
	case "", "punkt":
		return NewPunkt()
	case "simple":
		return Simple{}, nil
	default:
		return nil, fmt.Errorf("unknown segmenter %q (want punkt or simple)", name)
	}
}
