package fastqmerge

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/ratzeni/toolkit"
	"gopkg.in/yaml.v3"
)

// SampleUnits is one entry of the samples mapping.
type SampleUnits struct {
	Name  string
	Units []string
}

// Input is the parsed sample -> unit -> file document. Samples keeps the
// declaration order of the document.
type Input struct {
	Samples []SampleUnits
	Units   map[string][]string
}

type rawInput struct {
	Samples yaml.Node           `yaml:"samples"`
	Units   map[string][]string `yaml:"units"`
}

// ParseInput decodes the YAML input document.
func ParseInput(r io.Reader) (*Input, error) {
	var raw rawInput
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty document: %w", ErrMalformedInput)
		}
		return nil, pfx.Err(err)
	}

	if raw.Samples.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top-level 'samples' must be a mapping: %w", ErrMalformedInput)
	}
	if raw.Units == nil {
		return nil, fmt.Errorf("top-level 'units' must be a mapping: %w", ErrMalformedInput)
	}

	in := &Input{Units: raw.Units}
	for i := 0; i+1 < len(raw.Samples.Content); i += 2 {
		key, value := raw.Samples.Content[i], raw.Samples.Content[i+1]

		var units []string
		if err := value.Decode(&units); err != nil {
			return nil, pfx.Err(fmt.Errorf("sample %s (line %d): %w", key.Value, key.Line, err))
		}
		in.Samples = append(in.Samples, SampleUnits{Name: key.Value, Units: units})
	}

	return in, nil
}

// ReadInput opens a local or gs:// input document, decompressing it if
// needed, and parses it.
func ReadInput(ctx context.Context, path string, client *storage.Client) (*Input, error) {
	rc, err := toolkit.OpenMaybeCompressed(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	in, err := ParseInput(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// Paths lists every raw read file referenced by a sample, in declaration
// order. Unreferenced units are not included.
func (in *Input) Paths() []string {
	var out []string
	for _, s := range in.Samples {
		for _, unit := range s.Units {
			out = append(out, in.Units[unit]...)
		}
	}
	return out
}
