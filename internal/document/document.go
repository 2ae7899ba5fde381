package document

import (
	"path/filepath"
	"strings"
)

// Format is the container a document was extracted from.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// Columns is the header of the output table, in order.
var Columns = []string{"celex", "sent", "deontic", "word_count", "sent_count", "doc_format"}

// Document is the extracted text of one legislative act.
type Document struct {
	ID       string // CELEX identifier (filename stem)
	Filename string
	Text     string
	Format   Format
}

// Row is one candidate regulatory sentence with its document metadata.
type Row struct {
	CELEX     string `json:"celex"`
	Sentence  string `json:"sent"`
	Deontic   string `json:"deontic"`
	WordCount int    `json:"word_count"`
	SentCount int    `json:"sent_count"`
	Format    Format `json:"doc_format"`
}

// New builds a Document from a filename (not a path) and its text.
func New(filename, text string) Document {
	return Document{
		ID:       IDFor(filename),
		Filename: filename,
		Text:     text,
		Format:   FormatFor(filename),
	}
}

// FormatFor reports pdf for .pdf files and html for everything else.
func FormatFor(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return FormatPDF
	}
	return FormatHTML
}

// IDFor strips a .pdf or .html extension from filename.
func IDFor(filename string) string {
	name := filepath.Base(filename)
	ext := filepath.Ext(name)
	switch strings.ToLower(ext) {
	case ".pdf", ".html":
		return strings.TrimSuffix(name, ext)
	}
	return name
}
