package fastqmerge

import (
	"fmt"
	"path/filepath"
)

// SamplePairing holds a sample's raw files split by read direction. Each list
// keeps unit then file declaration order, which is the concatenation order.
type SamplePairing struct {
	Name string
	R1   []string
	R2   []string
}

func (s SamplePairing) Files(read Read) []string {
	if read == R2 {
		return s.R2
	}
	return s.R1
}

type Plan struct {
	Samples []SamplePairing
}

// BuildPlan classifies every file of every sample. Any unclassifiable file or
// undeclared unit fails the whole plan, so nothing is merged.
func BuildPlan(in *Input) (*Plan, error) {
	plan := &Plan{Samples: make([]SamplePairing, 0, len(in.Samples))}

	for _, sample := range in.Samples {
		pairing := SamplePairing{Name: sample.Name, R1: []string{}, R2: []string{}}

		for _, unit := range sample.Units {
			files, exists := in.Units[unit]
			if !exists {
				return nil, fmt.Errorf("sample %s, unit %s: %w", sample.Name, unit, ErrUnknownUnit)
			}

			for _, f := range files {
				read, err := ReadDirection(f)
				if err != nil {
					return nil, fmt.Errorf("sample %s: %w", sample.Name, err)
				}

				switch read {
				case R1:
					pairing.R1 = append(pairing.R1, f)
				case R2:
					pairing.R2 = append(pairing.R2, f)
				}
			}
		}

		plan.Samples = append(plan.Samples, pairing)
	}

	return plan, nil
}

// MergedPath is where a sample's merged file for one direction is written.
func MergedPath(folder, sample string, read Read) string {
	return filepath.Join(folder, fmt.Sprintf("%s_%s.fastq.gz", sample, read))
}
