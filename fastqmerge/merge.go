package fastqmerge

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/ratzeni/toolkit"
	"github.com/sirupsen/logrus"
)

const BufferSize = 1 << 20

// Merger executes a Plan. The zero value of Concurrency merges one sample at
// a time.
type Merger struct {
	Folder      string
	Paired      bool
	Verify      bool
	Concurrency int

	// Client is only needed when inputs live on gs://
	Client *storage.Client
	Log    logrus.FieldLogger
}

// Merge writes <folder>/<sample>_R1.fastq.gz for every sample, and the R2
// counterpart in paired mode. The first failure stops the run; files written
// up to that point are left in place.
func (m *Merger) Merge(ctx context.Context, plan *Plan) error {
	if m.Paired {
		m.Log.Infoln("Paired Reads mode activated: merging R2 reads.")
	}

	if m.Concurrency <= 1 {
		for _, sample := range plan.Samples {
			if err := m.mergeSample(ctx, sample); err != nil {
				return err
			}
		}
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Samples share nothing, so they can be merged side by side. Order inside
	// a sample is untouched.
	semaphore := make(chan struct{}, m.Concurrency)
	errs := make(chan error, len(plan.Samples))
	var wg sync.WaitGroup

	for _, sample := range plan.Samples {
		// Will block after `Concurrency` simultaneous merges are running
		semaphore <- struct{}{}
		if ctx.Err() != nil {
			<-semaphore
			break
		}

		wg.Add(1)
		go func(sample SamplePairing) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := m.mergeSample(ctx, sample); err != nil {
				errs <- err
				cancel()
			}
		}(sample)
	}

	wg.Wait()
	close(errs)

	// The first error sent is the one that triggered cancellation.
	return <-errs
}

func (m *Merger) mergeSample(ctx context.Context, sample SamplePairing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	reads := []Read{R1}
	if m.Paired {
		reads = append(reads, R2)
	}

	for _, read := range reads {
		dst := MergedPath(m.Folder, sample.Name, read)
		srcs := sample.Files(read)

		if len(srcs) == 0 {
			m.Log.Warnf("Sample %s has no %s files: %s will be empty", sample.Name, read, dst)
		}
		m.Log.Infof("Running merge command: cat %s > %s", strings.Join(srcs, " "), dst)

		if err := m.concatenate(ctx, dst, srcs); err != nil {
			return fmt.Errorf("sample %s %s: %w", sample.Name, read, err)
		}

		if m.Verify {
			records, err := CountFastqRecords(dst)
			if err != nil {
				return fmt.Errorf("sample %s %s: %w", sample.Name, read, err)
			}
			m.Log.Infof("Verified %s: %d reads", dst, records)
		}
	}

	return nil
}

// concatenate copies srcs byte for byte, in order, into a freshly truncated
// dst.
func (m *Merger) concatenate(ctx context.Context, dst string, srcs []string) (err error) {
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pfx.Err(err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = pfx.Err(cerr)
		}
	}()

	bw := bufio.NewWriterSize(out, BufferSize)
	for _, src := range srcs {
		if err := m.appendFile(ctx, bw, src); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

func (m *Merger) appendFile(ctx context.Context, w io.Writer, src string) error {
	in, err := toolkit.MaybeOpenFromGoogleStorage(ctx, src, m.Client)
	if err != nil {
		return pfx.Err(err)
	}
	defer in.Close()

	br := bufio.NewReaderSize(in, BufferSize)

	// Peek so the sniffed bytes are still copied.
	head, _ := br.Peek(6)
	if dt := toolkit.MatchDataType(head); dt != toolkit.DataTypeGzip {
		m.Log.Warnf("%s looks %s, not gzip: the merged file will not be a valid .fastq.gz", src, dt)
	}

	if _, err := io.Copy(w, br); err != nil {
		return pfx.Err(fmt.Errorf("%s: %w", src, err))
	}

	return nil
}
