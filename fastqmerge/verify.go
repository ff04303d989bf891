package fastqmerge

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
)

const linesPerRecord = 4

// CountFastqRecords decompresses every gzip member of a merged file and
// counts its FASTQ records. An empty file holds zero records.
func CountFastqRecords(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, pfx.Err(err)
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, BufferSize)
	if _, err := br.Peek(1); err == io.EOF {
		return 0, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		return 0, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}
	defer zr.Close()

	lines, err := countLines(zr)
	if err != nil {
		return 0, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	if lines%linesPerRecord != 0 {
		return 0, fmt.Errorf("%s: %d lines: %w", path, lines, ErrTruncatedFastq)
	}

	return lines / linesPerRecord, nil
}

// countLines counts newline-terminated lines, plus a trailing unterminated one.
func countLines(r io.Reader) (int64, error) {
	buf := make([]byte, 64*1024)
	var lines int64
	var last byte = '\n'

	for {
		n, err := r.Read(buf)
		if n > 0 {
			lines += int64(bytes.Count(buf[:n], []byte{'\n'}))
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	if last != '\n' {
		lines++
	}

	return lines, nil
}
