package pedigree

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRectangularize(t *testing.T) {
	for _, v := range []struct {
		name     string
		raw      [][]string
		expected [][]string
	}{
		{
			"empty",
			[][]string{},
			[][]string{},
		},
		{
			"already rectangular",
			[][]string{{"a", "b"}, {"1", "2"}},
			[][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			"header with trailing empty cells",
			[][]string{{"a", "b", "", " "}, {"1", "2", "", ""}},
			[][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			"ragged rows are padded",
			[][]string{{"a", "b", "c"}, {"1"}, {}},
			[][]string{{"a", "b", "c"}, {"1", "", ""}, {"", "", ""}},
		},
		{
			"rows wider than the header are cut",
			[][]string{{"a", "b"}, {"1", "2", "3", "4"}},
			[][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			"inner empty header cell is kept",
			[][]string{{"a", "", "c", ""}, {"1", "2", "3", "4"}},
			[][]string{{"a", "", "c"}, {"1", "2", "3"}},
		},
	} {
		if diff := cmp.Diff(v.expected, rectangularize(v.raw)); diff != "" {
			t.Errorf("%s: records mismatch (-want +got):\n%s", v.name, diff)
		}
	}
}

func TestRectangularizeFeedsDecodeRecords(t *testing.T) {
	header := append(append([]string{}, RequiredColumns...), "", "")
	raw := [][]string{
		header,
		{"PRJ", "FamA", "P1", "client one", "proband", "M", "yes", "", "stray"},
		{"PRJ", "FamA", "P2", "client two", "father", "M"},
	}

	rows, err := DecodeRecords(rectangularize(raw))
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

func TestReadXLSRecordsRejectsNonWorkbook(t *testing.T) {
	if _, err := ReadXLSRecords(bytes.NewReader([]byte(sheetHeader))); err == nil {
		t.Fatal("expected an error for tab-delimited text")
	}
}

func TestReadSampleSheetXLSExtension(t *testing.T) {
	// A tab-delimited file saved under an .xls name is routed to the
	// workbook reader and refused there.
	path := filepath.Join(t.TempDir(), "sheet.XLS")
	if err := os.WriteFile(path, []byte(sheetHeader+"PRJ\tFamA\tP1\tc1\tproband\tM\tyes\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadSampleSheet(context.Background(), path, nil, ReadOptions{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("expected the error to name %s, got %v", path, err)
	}
}
