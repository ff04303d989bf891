package pedigree

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"github.com/ratzeni/toolkit"
)

// SampleRow is one line of the sample sheet. Columns not listed here are
// ignored.
type SampleRow struct {
	Project            string `csv:"Project"`
	FamilyID           string `csv:"Family_id"`
	BikaID             string `csv:"Bika_id"`
	ClientID           string `csv:"Client_id"`
	FamilyRelationship string `csv:"Family_relationship"`
	Gender             string `csv:"Gender"`
	AffectedOrNot      string `csv:"Affected_or_not"`
}

var RequiredColumns = []string{
	"Project",
	"Family_id",
	"Bika_id",
	"Client_id",
	"Family_relationship",
	"Gender",
	"Affected_or_not",
}

// DefaultDelimiter of sample sheets
const DefaultDelimiter = '\t'

// ReadOptions tweaks how ReadSampleSheet parses its input.
type ReadOptions struct {
	// DetectDelimiter sniffs the delimiter instead of assuming a tab.
	DetectDelimiter bool
}

// ReadSampleSheet loads a local or gs:// sample sheet. Compressed sheets are
// decompressed transparently; .xls workbooks are read from their first
// worksheet.
func ReadSampleSheet(ctx context.Context, path string, client *storage.Client, opts ReadOptions) ([]SampleRow, error) {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return readXLSSampleSheet(ctx, path, client)
	}

	rc, err := toolkit.OpenMaybeCompressed(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, pfx.Err(err)
	}

	comma := DefaultDelimiter
	if opts.DetectDelimiter {
		comma = toolkit.DetermineDelimiter(bytes.NewReader(data), DefaultDelimiter)
	}

	rows, err := ParseSampleSheet(bytes.NewReader(data), comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

func readXLSSampleSheet(ctx context.Context, path string, client *storage.Client) ([]SampleRow, error) {
	rc, err := toolkit.MaybeOpenFromGoogleStorage(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	// The workbook parser needs to seek.
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, pfx.Err(err)
	}

	records, err := ReadXLSRecords(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rows, err := DecodeRecords(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// ParseSampleSheet reads a delimited sample sheet with a header row.
func ParseSampleSheet(r io.Reader, comma rune) ([]SampleRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}

	return DecodeRecords(records)
}

// DecodeRecords maps raw records, header first, onto SampleRows. Short rows
// are padded and blank rows dropped.
func DecodeRecords(records [][]string) ([]SampleRow, error) {
	if len(records) == 0 {
		return nil, ErrEmptySheet
	}

	header := records[0]
	if len(header) > 0 {
		// Excel prefixes exported text with a byte order mark.
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		present[name] = struct{}{}
	}
	for _, name := range RequiredColumns {
		if _, exists := present[name]; !exists {
			return nil, fmt.Errorf("%q: %w", name, ErrMissingColumn)
		}
	}

	cleaned := [][]string{header}
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		cleaned = append(cleaned, rec[:len(header)])
	}

	rows := []SampleRow{}
	if len(cleaned) == 1 {
		return rows, nil
	}

	if err := gocsv.UnmarshalCSV(&recordsReader{records: cleaned}, &rows); err != nil {
		return nil, pfx.Err(err)
	}

	return rows, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// recordsReader satisfies gocsv.CSVReader over records already in memory.
type recordsReader struct {
	records [][]string
	pos     int
}

func (r *recordsReader) Read() ([]string, error) {
	if r.pos >= len(r.records) {
		return nil, io.EOF
	}
	rec := r.records[r.pos]
	r.pos++
	return rec, nil
}

func (r *recordsReader) ReadAll() ([][]string, error) {
	rest := r.records[r.pos:]
	r.pos = len(r.records)
	return rest, nil
}
