package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds the lookup tables that drive span extraction, sentence
// filtering and tagging. Every component receives its Rules explicitly so
// the pipeline can be pointed at another legal corpus without code changes.
type Rules struct {
	// Operative span boundaries, tried in order.
	BeginMarkers []string `yaml:"begin_markers"`
	EndMarkers   []string `yaml:"end_markers"`

	// Boilerplate that disqualifies a sentence (substring and near-duplicate checks).
	ExcludedPhrases []string `yaml:"excluded_phrases"`
	// Lead-ins that disqualify a sentence when it starts with them.
	ExcludedStartPhrases []string `yaml:"excluded_start_phrases"`

	// Heading labels stripped from the start of a sentence.
	StructuralTokens []string `yaml:"structural_tokens"`

	Deontics  []string `yaml:"deontics"`
	Stopwords []string `yaml:"stopwords"`

	// Page furniture. JournalHeaders match case-insensitively, PageMarkers exactly.
	JournalHeaders []string `yaml:"journal_headers"`
	PageMarkers    []string `yaml:"page_markers"`

	MinChars            int `yaml:"min_chars"`
	MinWordLength       int `yaml:"min_word_length"`
	SimilarityThreshold int `yaml:"similarity_threshold"`
}

// Default returns the tables tuned for EUR-Lex regulations, decisions and directives.
func Default() Rules {
	return Rules{
		BeginMarkers: []string{
			"HAS ADOPTED THIS REGULATION",
			"HAVE ADOPTED THIS REGULATION",
			"HAS DECIDED AS FOLLOWS",
			"HAVE ADOPTED THIS DECISION",
			"HAS ADOPTED THIS DECISION",
			"HAS ADOPTED THIS DIRECTIVE",
		},
		EndMarkers: []string{
			"Done at Brussels",
			"Done at Luxembourg",
			"Done at Strasbourg",
			"Done at Frankfurt",
		},
		ExcludedPhrases: []string{
			"shall apply",
			"shall mean",
			"this regulation shall apply",
			"shall be binding in its entirety and directly applicable in the member states",
			"shall be binding in its entirety and directly applicable in all member states",
			"shall enter into force",
			"shall be based",
			"within the meaning",
			"shall be construed",
			"shall take effect",
		},
		ExcludedStartPhrases: []string{
			"amendments to decision",
			"amendments to implementing decision",
			"in this case,",
			"in such a case,",
			"in such cases,",
			"in all other cases,",
		},
		StructuralTokens: []string{
			"Article", "Chapter", "Section",
			"ARTICLE", "CHAPTER", "SECTION",
			"Paragraph", "PARAGRAPH",
		},
		Deontics: []string{"shall ", "must ", "shall not ", "must not "},
		Stopwords: []string{
			"the", "and", "this", "that", "for", "with", "are", "its", "which",
			"have", "has", "these", "those", "from", "was", "were", "had", "into", "then",
		},
		JournalHeaders:      []string{"en official journal"},
		PageMarkers:         []string{"PAGE"},
		MinChars:            15,
		MinWordLength:       3,
		SimilarityThreshold: 90,
	}
}

// Load reads a YAML rules file on top of Default. Keys absent from the file
// keep their default values.
func Load(path string) (Rules, error) {
	r := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules: %w", err)
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("parse rules %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, fmt.Errorf("rules %s: %w", path, err)
	}
	return r, nil
}

// Validate checks that the tables can drive the pipeline.
func (r Rules) Validate() error {
	if len(r.BeginMarkers) == 0 {
		return fmt.Errorf("begin_markers must not be empty")
	}
	if len(r.EndMarkers) == 0 {
		return fmt.Errorf("end_markers must not be empty")
	}
	if len(r.Deontics) == 0 {
		return fmt.Errorf("deontics must not be empty")
	}
	for _, m := range append(append([]string{}, r.BeginMarkers...), r.EndMarkers...) {
		if m == "" {
			return fmt.Errorf("boundary markers must not be blank")
		}
	}
	if r.MinChars < 0 {
		return fmt.Errorf("min_chars must be >= 0, got %d", r.MinChars)
	}
	if r.MinWordLength < 0 {
		return fmt.Errorf("min_word_length must be >= 0, got %d", r.MinWordLength)
	}
	if r.SimilarityThreshold < 0 || r.SimilarityThreshold > 100 {
		return fmt.Errorf("similarity_threshold must be within 0..100, got %d", r.SimilarityThreshold)
	}
	return nil
}

// Marshal renders the tables as YAML, in the format Load accepts.
func (r Rules) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}
