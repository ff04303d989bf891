// Package fastqmerge consolidates per-lane FASTQ files into one file per
// sample and read direction, and writes the pipeline configuration that
// points at the merged R1 files.
//
// The input document maps samples to sequencing units and units to raw read
// files:
//
//	samples:
//	  S1: [unit1, unit2]
//	units:
//	  unit1: [/runs/a/S1_S1_L001_R1_001.fastq.gz, /runs/a/S1_S1_L001_R2_001.fastq.gz]
//	  unit2: [/runs/b/S1_S1_L002_R1_001.fastq.gz, /runs/b/S1_S1_L002_R2_001.fastq.gz]
//
// Merging is a raw byte concatenation in declaration order. Concatenated gzip
// members form a valid gzip stream, so nothing is decompressed.
package fastqmerge
