package fastqmerge

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTemplate = "config.template.yaml"
	samplesKey      = "samples"
	yamlIndent      = 4
)

// ConfigFileName is the name of the per-project pipeline configuration.
func ConfigFileName(project string) string {
	return fmt.Sprintf("config.project.%s.yaml", project)
}

// SampleEntry is one line of the emitted samples mapping.
type SampleEntry struct {
	Name string
	Path string
}

// SampleEntries maps every planned sample to the absolute path of its merged
// R1 file, in plan order. The paths are derived whether or not the merge runs.
func SampleEntries(plan *Plan, folder string) ([]SampleEntry, error) {
	out := make([]SampleEntry, 0, len(plan.Samples))
	for _, s := range plan.Samples {
		abs, err := filepath.Abs(MergedPath(folder, s.Name, R1))
		if err != nil {
			return nil, pfx.Err(err)
		}
		out = append(out, SampleEntry{Name: s.Name, Path: abs})
	}
	return out, nil
}

// RenderConfig replaces the top-level samples entry of the template document
// with entries. Every other key, and the key order, passes through.
func RenderConfig(template []byte, entries []SampleEntry) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(template, &doc); err != nil {
		return nil, pfx.Err(err)
	}

	// An empty template decodes to a zero node
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("template must be a mapping at the top level")
	}
	root := doc.Content[0]

	samples := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range entries {
		samples.Content = append(samples.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Path},
		)
	}

	replaced := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == samplesKey {
			root.Content[i+1] = samples
			replaced = true
			break
		}
	}
	if !replaced {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: samplesKey},
			samples,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(&doc); err != nil {
		return nil, pfx.Err(err)
	}
	if err := enc.Close(); err != nil {
		return nil, pfx.Err(err)
	}

	return buf.Bytes(), nil
}

// EmitConfig reads the template at templatePath and writes the rendered
// configuration to outPath. A missing template is an error.
func EmitConfig(templatePath, outPath string, entries []SampleEntry) error {
	template, err := os.ReadFile(templatePath)
	if err != nil {
		return pfx.Err(err)
	}

	rendered, err := RenderConfig(template, entries)
	if err != nil {
		return fmt.Errorf("%s: %w", templatePath, err)
	}

	if err := os.WriteFile(outPath, rendered, 0644); err != nil {
		return pfx.Err(err)
	}

	return nil
}
