package fastqmerge

import (
	"context"
	"path/filepath"

	"github.com/ratzeni/toolkit"
	"github.com/sirupsen/logrus"
)

// Options mirrors the command line of cmd/mergefastq.
type Options struct {
	InputFile string
	Folder    string
	Project   string

	// Template defaults to DefaultTemplate, ConfigDir to the working directory.
	Template  string
	ConfigDir string

	MergeOnly   bool
	ConfigOnly  bool
	Force       bool
	Paired      bool
	Verify      bool
	Concurrency int
}

// Run performs one full pass: folder check, input parsing, classification,
// merge and configuration emission, each gated by the mode flags.
// A Google Storage client is dialed only if the input document or one of the
// FASTQ files it lists lives on gs://.
func Run(ctx context.Context, opts Options, log logrus.FieldLogger) error {
	if opts.Template == "" {
		opts.Template = DefaultTemplate
	}

	if err := PrepareFolder(opts.Folder, opts.Force, log); err != nil {
		return err
	}

	client, err := toolkit.NewStorageClientIfNeeded(ctx, opts.InputFile)
	if err != nil {
		return err
	}

	log.Infof("Reading input file: %s", opts.InputFile)
	in, err := ReadInput(ctx, opts.InputFile, client)
	if err != nil {
		return err
	}

	if client == nil {
		if client, err = toolkit.NewStorageClientIfNeeded(ctx, in.Paths()...); err != nil {
			return err
		}
	}
	if client != nil {
		defer client.Close()
	}

	plan, err := BuildPlan(in)
	if err != nil {
		return err
	}

	if opts.ConfigOnly {
		log.Infoln("Skipping merge: --config_only mode activated")
	} else {
		merger := &Merger{
			Folder:      opts.Folder,
			Paired:      opts.Paired,
			Verify:      opts.Verify,
			Concurrency: opts.Concurrency,
			Client:      client,
			Log:         log,
		}
		if err := merger.Merge(ctx, plan); err != nil {
			return err
		}
	}

	if opts.MergeOnly {
		log.Infoln("Skipping configfile generation: --merge_only mode activated")
		return nil
	}

	entries, err := SampleEntries(plan, opts.Folder)
	if err != nil {
		return err
	}

	outPath := filepath.Join(opts.ConfigDir, ConfigFileName(opts.Project))
	log.Infof("Writing configfile: %s", outPath)

	return EmitConfig(opts.Template, outPath, entries)
}
