// Package toolkit holds the I/O helpers shared by the pipeline preparation
// binaries under cmd/: opening local or gs:// inputs, sniffing and undoing
// compression, and guessing delimiters of tabular files.
package toolkit
