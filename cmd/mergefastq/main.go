// mergefastq concatenates the per-lane FASTQ files of each sample into one
// file per read direction and writes the project configuration that points
// the downstream pipeline at them.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	_ "github.com/ratzeni/toolkit/compileinfoprint"

	"github.com/ratzeni/toolkit"
	"github.com/ratzeni/toolkit/compileinfo"
	"github.com/ratzeni/toolkit/fastqmerge"
	"github.com/ratzeni/toolkit/logging"
)

func main() {
	var opts fastqmerge.Options
	var logLevel, logFile string

	flag.StringVar(&opts.InputFile, "input_file", "", "YAML input file with 'samples' (sample -> units) and 'units' (unit -> FASTQ files). Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&opts.InputFile, "i", "", "Shorthand for --input_file")
	flag.StringVar(&opts.Folder, "folder", "", "Destination folder for merged fastq files")
	flag.StringVar(&opts.Folder, "w", "", "Shorthand for --folder")
	flag.StringVar(&opts.Project, "project_name", "", "Project name for config rename (default: name of the current directory)")
	flag.StringVar(&opts.Project, "p", "", "Shorthand for --project_name")
	flag.BoolVar(&opts.MergeOnly, "merge_only", false, "Merge fastq files without generating a configfile")
	flag.BoolVar(&opts.MergeOnly, "mo", false, "Shorthand for --merge_only")
	flag.BoolVar(&opts.ConfigOnly, "config_only", false, "Generate the configfile without merging fastq files")
	flag.BoolVar(&opts.ConfigOnly, "co", false, "Shorthand for --config_only")
	flag.BoolVar(&opts.Force, "force", false, "Write merged fastq files in the directory even if it exists")
	flag.BoolVar(&opts.Paired, "paired", false, "Activate paired end mode: also merge R2 files")
	flag.StringVar(&opts.Template, "template", fastqmerge.DefaultTemplate, "Configuration template whose 'samples' entry gets replaced")
	flag.StringVar(&opts.ConfigDir, "config_dir", "", "Directory for config.project.<project_name>.yaml (default: current directory)")
	flag.IntVar(&opts.Concurrency, "concurrency", 1, "Number of samples merged at the same time")
	flag.BoolVar(&opts.Verify, "verify", false, "Decompress every merged file and check it holds whole FASTQ records")
	flag.StringVar(&logLevel, "log_level", "info", "One of debug, info, warning, error")
	flag.StringVar(&logFile, "log_file", "", "Append log lines to this file instead of stderr")
	flag.Parse()

	if opts.InputFile == "" {
		flag.Usage()
		log.Fatalln("Must specify an --input_file")
	}

	if opts.Folder == "" {
		flag.Usage()
		log.Fatalln("Must specify a --folder")
	}

	logger, err := logging.New(logging.Options{Name: "main", Level: logLevel, File: logFile})
	if err != nil {
		log.Fatalln(err)
	}
	defer logger.Close()
	logger.WithFields(compileinfo.Get().Fields()).Infoln("Build")

	if opts.Project == "" {
		wd, err := os.Getwd()
		if err != nil {
			logger.Fatalln(err)
		}
		opts.Project = filepath.Base(wd)
	}

	for _, path := range []*string{&opts.InputFile, &opts.Folder, &opts.Template, &opts.ConfigDir} {
		if *path, err = toolkit.ExpandHome(*path); err != nil {
			logger.Fatalln(err)
		}
	}

	if err := fastqmerge.Run(context.Background(), opts, logger); err != nil {
		logger.Fatalln(err)
	}
}
