package pedigree

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

func spaceWriter(w io.Writer, crlf bool) *gocsv.SafeCSVWriter {
	cw := csv.NewWriter(w)
	cw.Comma = ' '
	cw.UseCRLF = crlf
	return gocsv.NewSafeCSVWriter(cw)
}

// WritePed writes space-delimited PED rows without a header. Lines end in
// \r\n when crlf is set.
func WritePed(w io.Writer, ped []PedRecord, crlf bool) error {
	sw := spaceWriter(w, crlf)
	if err := gocsv.MarshalCSVWithoutHeaders(&ped, sw); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// WriteReheader writes the space-delimited reheader map under a
// "bika_id client_id" header.
func WriteReheader(w io.Writer, reheader []ReheaderRecord, crlf bool) error {
	sw := spaceWriter(w, crlf)
	if err := gocsv.MarshalCSV(&reheader, sw); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// WriteSets writes the tab-delimited set index.
func WriteSets(w io.Writer, sets []SetRecord) error {
	if _, err := fmt.Fprintf(w, "set\tsample\n"); err != nil {
		return pfx.Err(err)
	}

	for _, set := range sets {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", set.FamID, strings.Join(set.Samples, ",")); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}

// writeFile truncates path and fills it through write.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pfx.Err(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = pfx.Err(cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
