package pedigree

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
)

func TestParseSampleSheet(t *testing.T) {
	input := "Notes\t" + strings.TrimSuffix(sheetHeader, "\n") + "\n" +
		"x\tPRJ\tFamA\tP1\tclient one\tproband\tM\tyes\n" +
		"\n" +
		"y\tPRJ\tFamA\tP2\tclient two\tfather\tM\n"

	rows, err := ParseSampleSheet(strings.NewReader(input), '\t')
	if err != nil {
		t.Fatal(err)
	}

	expected := []SampleRow{
		row("PRJ", "FamA", "P1", "client one", "proband", "M", "yes"),
		row("PRJ", "FamA", "P2", "client two", "father", "M", ""),
	}
	if diff := cmp.Diff(expected, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSampleSheetByteOrderMark(t *testing.T) {
	input := "\ufeff" + sheet("PRJ|FamA|P1|client one|proband|F|no")

	rows, err := ParseSampleSheet(strings.NewReader(input), '\t')
	if err != nil {
		t.Fatal(err)
	}

	expected := []SampleRow{row("PRJ", "FamA", "P1", "client one", "proband", "F", "no")}
	if diff := cmp.Diff(expected, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSampleSheetMissingColumn(t *testing.T) {
	input := "Project\tFamily_id\tBika_id\n PRJ\tFamA\tP1\n"

	_, err := ParseSampleSheet(strings.NewReader(input), '\t')
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	if !strings.Contains(err.Error(), "Client_id") {
		t.Errorf("expected the missing column to be named: %v", err)
	}
}

func TestParseSampleSheetHeaderOnly(t *testing.T) {
	rows, err := ParseSampleSheet(strings.NewReader(sheetHeader), '\t')
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestParseSampleSheetEmpty(t *testing.T) {
	if _, err := ParseSampleSheet(strings.NewReader(""), '\t'); !errors.Is(err, ErrEmptySheet) {
		t.Fatalf("expected ErrEmptySheet, got %v", err)
	}
}

func TestReadSampleSheetGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte(sheet("PRJ|FamA|P1|c1|proband|M|yes")))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "samples.tsv.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadSampleSheet(context.Background(), path, nil, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].BikaID != "P1" {
		t.Errorf("unexpected rows %+v", rows)
	}
}

func TestReadSampleSheetDetectsDelimiter(t *testing.T) {
	var b strings.Builder
	b.WriteString(strings.ReplaceAll(sheetHeader, "\t", ","))
	for _, r := range []string{
		"PRJ,FamA,P1,c1,proband,M,yes",
		"PRJ,FamA,P2,c2,father,M,no",
		"PRJ,FamA,P3,c3,mother,F,no",
	} {
		b.WriteString(r + "\n")
	}

	path := filepath.Join(t.TempDir(), "samples.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadSampleSheet(context.Background(), path, nil, ReadOptions{DetectDelimiter: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || rows[2].FamilyRelationship != "mother" {
		t.Errorf("unexpected rows %+v", rows)
	}

	// Without detection the comma separated header is one unknown column.
	if _, err := ReadSampleSheet(context.Background(), path, nil, ReadOptions{}); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn without detection, got %v", err)
	}
}
