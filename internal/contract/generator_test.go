package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"smartlend/internal/domain/loan"
)

func sampleLoan() *loan.LoanApplication {
	return &loan.LoanApplication{
		ID:        42,
		UserID:    1,
		FullName:  "Jean Dupont",
		Email:     "jean@example.com",
		Amount:    10000,
		Duration:  12,
		Period:    loan.PeriodMonthly,
		Objective: "car purchase",
		RIB:       "FR7612345678901234567890123",
		Fee:       500,
		Interest:  1200,
		Total:     11700,
		Status:    loan.StatusApproved,
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestFilenameDeterministic(t *testing.T) {
	if Filename(42) != "contract_42.pdf" {
		t.Fatalf("got %q", Filename(42))
	}
	if Filename(42) != Filename(42) {
		t.Fatal("filename not stable")
	}
}

func TestGenerateWritesPDF(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir)

	path, err := g.Generate(sampleLoan())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if filepath.Base(path) != "contract_42.pdf" {
		t.Fatalf("unexpected file name: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Fatalf("output is not a PDF (starts %q)", data[:8])
	}
}

func TestGenerateOverwrites(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir)
	l := sampleLoan()

	if _, err := g.Generate(l); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if _, err := g.Generate(l); err != nil {
		t.Fatalf("second Generate: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("regeneration accumulated files: %d", len(entries))
	}
}

func TestGenerateLongPurposePaginates(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir)
	l := sampleLoan()
	l.Objective = strings.Repeat("expansion of the family bakery ", 4)

	if _, err := g.Generate(l); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}
