package fastqmerge

import (
	"fmt"
	"strings"
)

// Read is the read-pair direction encoded in a FASTQ file name.
type Read string

const (
	R1 Read = "R1"
	R2 Read = "R2"
)

// readTokenIndex is the 0-based position of the direction among the
// underscore delimited tokens of an Illumina style basename, e.g.
// Sample_S1_L001_R1_001.fastq.gz.
const readTokenIndex = 3

// ReadDirection classifies a raw read file by the 4th underscore-delimited
// token of its basename.
func ReadDirection(path string) (Read, error) {
	parts := strings.Split(path, "/")
	basename := parts[len(parts)-1]

	tokens := strings.Split(basename, "_")
	if len(tokens) <= readTokenIndex {
		return "", fmt.Errorf("%s: only %d underscore-delimited tokens: %w", path, len(tokens), ErrReadDirection)
	}

	switch read := Read(tokens[readTokenIndex]); read {
	case R1, R2:
		return read, nil
	default:
		return "", fmt.Errorf("%s: found %q: %w", path, read, ErrReadDirection)
	}
}
