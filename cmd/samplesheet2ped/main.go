// samplesheet2ped derives a PED pedigree, a sample reheader map and a
// family set index from a tab separated sample sheet.
package main

import (
	"context"
	"flag"
	"log"

	_ "github.com/ratzeni/toolkit/compileinfoprint"

	"github.com/ratzeni/toolkit"
	"github.com/ratzeni/toolkit/compileinfo"
	"github.com/ratzeni/toolkit/logging"
	"github.com/ratzeni/toolkit/pedigree"
)

func main() {
	var opts pedigree.Options
	var logLevel, logFile string

	flag.StringVar(&opts.InputFile, "input_file", "", "Sample sheet (tsv, or xls). Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&opts.InputFile, "i", "", "Shorthand for --input_file")
	flag.StringVar(&opts.PedFile, "ped_file", "", "ped file (output). Default: project.ped next to the input")
	flag.StringVar(&opts.PedFile, "p", "", "Shorthand for --ped_file")
	flag.StringVar(&opts.ReheaderFile, "reheader_file", "", "reheader file (output). Default: reheader.txt next to the input")
	flag.StringVar(&opts.ReheaderFile, "r", "", "Shorthand for --reheader_file")
	flag.StringVar(&opts.SetsFile, "sets_file", "", "sets file (output). Default: sets.tsv next to the input")
	flag.StringVar(&opts.SetsFile, "s", "", "Shorthand for --sets_file")
	flag.BoolVar(&opts.DetectDelimiter, "detect_delimiter", false, "Guess the sample sheet delimiter instead of assuming tabs")
	flag.BoolVar(&opts.CRLF, "crlf", false, "End ped and reheader lines with \\r\\n")
	flag.StringVar(&logLevel, "log_level", "info", "One of debug, info, warning, error")
	flag.StringVar(&logFile, "log_file", "", "Append log lines to this file instead of stderr")
	flag.Parse()

	if opts.InputFile == "" {
		flag.Usage()
		log.Fatalln("Must specify an --input_file")
	}

	logger, err := logging.New(logging.Options{Name: "main", Level: logLevel, File: logFile})
	if err != nil {
		log.Fatalln(err)
	}
	defer logger.Close()
	logger.WithFields(compileinfo.Get().Fields()).Infoln("Build")

	for _, path := range []*string{&opts.InputFile, &opts.PedFile, &opts.ReheaderFile, &opts.SetsFile} {
		if *path, err = toolkit.ExpandHome(*path); err != nil {
			logger.Fatalln(err)
		}
	}

	if err := pedigree.Run(context.Background(), opts, logger); err != nil {
		logger.Fatalln(err)
	}
}
