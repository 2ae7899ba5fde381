package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const actHTML = `<html><body><p>HAS ADOPTED THIS REGULATION:</p>
<p>Operators must keep records of transfers. The register is kept by the Commission.</p>
<p>Done at Brussels, 1 May 2020.</p></body></html>`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExtractCommand_WritesCSV(t *testing.T) {
	in := t.TempDir()
	if err := os.WriteFile(filepath.Join(in, "32020R0001.html"), []byte(actHTML), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "sentences.csv")

	if _, err := run(t, "extract", "--segmenter", "simple", "-i", in, "-o", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %q", lines)
	}
	if lines[1] != "32020R0001,Operators must keep records of transfers.,must ,8,2,html" {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestExtractCommand_OutputDirectory(t *testing.T) {
	in := t.TempDir()
	if err := os.WriteFile(filepath.Join(in, "32020R0001.html"), []byte(actHTML), 0o644); err != nil {
		t.Fatal(err)
	}
	out := t.TempDir()
	if _, err := run(t, "extract", "--segmenter", "simple", "-i", in, "-o", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "sentences.csv")); err != nil {
		t.Errorf("expected sentences.csv in output directory: %v", err)
	}
}

func TestExtractCommand_ConfigurationErrors(t *testing.T) {
	empty := t.TempDir()
	_, err := run(t, "extract", "-i", empty, "-o", filepath.Join(empty, "out.csv"))
	if err == nil || !strings.Contains(err.Error(), "no valid .pdf or .html files") {
		t.Errorf("expected no-documents error, got %v", err)
	}

	_, err = run(t, "extract", "-i", empty, "-o", filepath.Join(empty, "out.json"))
	if err == nil || !strings.Contains(err.Error(), "CSV expected") {
		t.Errorf("expected extension error, got %v", err)
	}
}

func TestListCommand(t *testing.T) {
	in := t.TempDir()
	for _, name := range []string{"b.html", "a.pdf", "c.txt"} {
		if err := os.WriteFile(filepath.Join(in, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	out, err := run(t, "list", "-i", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a.pdf\nb.html\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRulesCommand(t *testing.T) {
	out, err := run(t, "rules")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "HAS ADOPTED THIS REGULATION") {
		t.Errorf("expected default begin markers in output, got:\n%s", out)
	}
}
