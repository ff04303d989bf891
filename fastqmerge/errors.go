package fastqmerge

import "errors"

var (
	ErrFolderExists   = errors.New("folder exists, rerun with the flag '--force'")
	ErrReadDirection  = errors.New("read direction token must be R1 or R2")
	ErrUnknownUnit    = errors.New("sample refers to an undeclared unit")
	ErrMalformedInput = errors.New("malformed input document")
	ErrTruncatedFastq = errors.New("merged FASTQ does not hold a whole number of records")
)
