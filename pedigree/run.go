package pedigree

import (
	"context"
	"io"
	"path/filepath"

	"github.com/ratzeni/toolkit"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPedFile      = "project.ped"
	DefaultReheaderFile = "reheader.txt"
	DefaultSetsFile     = "sets.tsv"
)

// Options mirrors the command line of cmd/samplesheet2ped. Empty output
// paths default to files next to the input, or in the working directory
// for gs:// inputs.
type Options struct {
	InputFile    string
	PedFile      string
	ReheaderFile string
	SetsFile     string

	DetectDelimiter bool

	// CRLF ends PED and reheader lines with \r\n, as older pipelines wrote
	// them. The sets file always uses \n.
	CRLF bool
}

// WithDefaults fills in the output paths that were left empty.
func (o Options) WithDefaults() Options {
	dir := filepath.Dir(o.InputFile)
	if toolkit.IsGoogleStoragePath(o.InputFile) {
		dir = "."
	}
	if o.PedFile == "" {
		o.PedFile = filepath.Join(dir, DefaultPedFile)
	}
	if o.ReheaderFile == "" {
		o.ReheaderFile = filepath.Join(dir, DefaultReheaderFile)
	}
	if o.SetsFile == "" {
		o.SetsFile = filepath.Join(dir, DefaultSetsFile)
	}
	return o
}

// Run reads the sample sheet and writes the PED, reheader and sets files.
// Everything is derived before the first file is opened.
func Run(ctx context.Context, opts Options, log logrus.FieldLogger) error {
	opts = opts.WithDefaults()

	client, err := toolkit.NewStorageClientIfNeeded(ctx, opts.InputFile)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	log.Infof("Reading %s", opts.InputFile)
	rows, err := ReadSampleSheet(ctx, opts.InputFile, client, ReadOptions{DetectDelimiter: opts.DetectDelimiter})
	if err != nil {
		return err
	}
	log.Debugf("Read %d sample rows", len(rows))

	ped, err := DerivePed(rows, log)
	if err != nil {
		return err
	}
	reheader := DeriveReheader(rows)
	sets := DeriveSets(ped)

	log.Infof("Creating ped file %s", opts.PedFile)
	if err := writeFile(opts.PedFile, func(w io.Writer) error { return WritePed(w, ped, opts.CRLF) }); err != nil {
		return err
	}

	log.Infof("Creating reheader file %s", opts.ReheaderFile)
	if err := writeFile(opts.ReheaderFile, func(w io.Writer) error { return WriteReheader(w, reheader, opts.CRLF) }); err != nil {
		return err
	}

	log.Infof("Creating sets file %s", opts.SetsFile)
	return writeFile(opts.SetsFile, func(w io.Writer) error { return WriteSets(w, sets) })
}
