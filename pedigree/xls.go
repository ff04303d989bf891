package pedigree

import (
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/extrame/xls"
)

// ReadXLSRecords returns every row of the first worksheet of a legacy Excel
// workbook, each cut or padded to the width of the header row.
func ReadXLSRecords(r io.ReadSeeker) ([][]string, error) {
	spreadsheet, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, pfx.Err(err)
	}

	// OpenReader returns neither workbook nor error when the OLE container
	// holds no Workbook stream.
	if spreadsheet == nil {
		return nil, fmt.Errorf("no workbook stream found")
	}

	if spreadsheet.NumSheets() < 1 {
		return nil, ErrEmptySheet
	}

	sheet := spreadsheet.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("Sheet 0 was nil")
	}

	raw := make([][]string, 0, int(sheet.MaxRow)+1)
	for rowID := 0; rowID <= int(sheet.MaxRow); rowID++ {
		row := sheet.Row(rowID)
		if row == nil {
			continue
		}

		rec := make([]string, 0, row.LastCol()+1)
		for colID := 0; colID <= row.LastCol(); colID++ {
			rec = append(rec, row.Col(colID))
		}
		raw = append(raw, rec)
	}

	return rectangularize(raw), nil
}

// rectangularize gives every record the width of the first one, once the
// trailing empty cells Excel leaves on the header are dropped. Short rows are
// padded, long rows cut.
func rectangularize(raw [][]string) [][]string {
	if len(raw) == 0 {
		return raw
	}

	header := raw[0]
	for len(header) > 0 && strings.TrimSpace(header[len(header)-1]) == "" {
		header = header[:len(header)-1]
	}
	width := len(header)

	records := make([][]string, 0, len(raw))
	records = append(records, header)
	for _, rec := range raw[1:] {
		out := make([]string, width)
		copy(out, rec)
		records = append(records, out)
	}

	return records
}
