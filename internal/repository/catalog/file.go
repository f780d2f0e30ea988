// Package catalog implements the assessment catalog sources: a YAML/JSON file,
// Redis/Valkey hashes and a Postgres table.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/assessrec/internal/domain/assessment"
)

// fileDocument is the on-disk catalog layout. A bare list of records is also accepted.
type fileDocument struct {
	Assessments []map[string]any `yaml:"assessments"`
}

// FileSource serves the catalog from a YAML or JSON file. The file is re-read
// on every fetch so edits are picked up without a restart.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed catalog.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchAll reads every record from the file, in file order.
func (f *FileSource) FetchAll(_ context.Context) ([]assessment.Record, error) {
	return LoadFile(f.path)
}

// Ping checks that the catalog file is readable.
func (f *FileSource) Ping(_ context.Context) error {
	fh, err := os.Open(filepath.Clean(f.path))
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	return fh.Close()
}

// LoadFile parses a catalog file. YAML is a superset of JSON, so both work.
func LoadFile(path string) ([]assessment.Record, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes catalog records from YAML or JSON bytes.
func Parse(data []byte) ([]assessment.Record, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if node.Kind == 0 || len(node.Content) == 0 {
		return []assessment.Record{}, nil
	}

	var raw []map[string]any
	switch root := node.Content[0]; root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode catalog list: %w", err)
		}
	case yaml.MappingNode:
		var doc fileDocument
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode catalog document: %w", err)
		}
		raw = doc.Assessments
	default:
		return nil, errors.New("parse catalog: expected a list of records or an assessments key")
	}

	out := make([]assessment.Record, 0, len(raw))
	for _, m := range raw {
		out = append(out, assessment.Record(m))
	}
	return out, nil
}
