package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/regextract/internal/extract"
	"github.com/dgallion1/regextract/internal/parser"
	"github.com/dgallion1/regextract/internal/rules"
	"github.com/dgallion1/regextract/internal/segment"
	"github.com/dgallion1/regextract/internal/similarity"
)

const actHTML = `<html><body>
<p>COMMISSION IMPLEMENTING REGULATION (EU) 2020/1</p>
<p>HAS ADOPTED THIS REGULATION:</p>
<p>Article 1</p>
<p>Operators must keep records of transfers. The register is kept by the Commission.</p>
<p>Article 2</p>
<p>Member States shall not charge fees for the register.</p>
<p>Done at Brussels, 1 May 2020.</p>
</body></html>`

const noSpanHTML = `<html><body><p>Operators must keep records.</p></body></html>`

func newTestRunner() *Runner {
	e := extract.New(rules.Default(), segment.Simple{}, similarity.Indel{}, nil)
	return NewRunner(e, parser.Options{}, nil, nil)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListDocuments_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "32020R0001.html", actHTML)
	writeFile(t, dir, "32020R0002.PDF", "x")
	writeFile(t, dir, "notes.txt", "x")
	writeFile(t, dir, "page.htm", "x")
	if err := os.Mkdir(filepath.Join(dir, "nested.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}

	names, err := ListDocuments(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 documents, got %v", names)
	}
	for _, n := range names {
		if !strings.HasPrefix(n, "3202") {
			t.Errorf("unexpected document %q", n)
		}
	}
}

func TestListDocuments_MissingDir(t *testing.T) {
	if _, err := ListDocuments(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestRun_ExtractsRowsInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "32020R0001.html", actHTML)
	writeFile(t, dir, "32020R0009.html", noSpanHTML)

	r := newTestRunner()
	rows, err := r.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].Sentence != "Operators must keep records of transfers." {
		t.Errorf("unexpected first sentence %q", rows[0].Sentence)
	}
	if rows[1].Deontic != "shall  | shall not " {
		t.Errorf("unexpected second tag %q", rows[1].Deontic)
	}
	for _, row := range rows {
		if row.CELEX != "32020R0001" || row.Format != "html" || row.SentCount != 3 {
			t.Errorf("unexpected row metadata %+v", row)
		}
	}

	snap := r.Stats().Snapshot()
	if snap.Documents != 2 || snap.Rows != 2 || snap.Empty != 1 {
		t.Errorf("unexpected stats %+v", snap)
	}
}

func TestRun_ParseFailureAborts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "32020R0001.pdf", "not really a pdf")

	if _, err := newTestRunner().Run(context.Background(), dir); err == nil {
		t.Fatal("expected parse error to abort the run")
	}
}

func TestProcessReader_UnsupportedExtension(t *testing.T) {
	if _, err := newTestRunner().ProcessReader(strings.NewReader("x"), "act.docx"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}
