// SPDX-License-Identifier: MIT

package raytrace

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a request file:
//
//	position:
//	  delta: 0.0
//	requests:
//	  - id: 9b1c...   # optional; generated when absent
//	    x: 6
//	    y: 0
//	    delta0: -0.82
//	    stop: 9
//	    samples: 500
type File struct {
	Position Position  `yaml:"position"`
	Requests []Request `yaml:"requests"`
}

// LoadRequests reads and validates the request file at path.
func LoadRequests(path string) ([]Request, Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Position{}, fmt.Errorf("raytrace: read %s: %w", path, err)
	}

	return ReadRequests(bytes.NewReader(data))
}

// ReadRequests decodes a request file from r. Unknown keys are rejected,
// missing IDs are generated, and every request is validated.
func ReadRequests(r io.Reader) ([]Request, Position, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, Position{}, ErrEmptyBatch
		}

		return nil, Position{}, fmt.Errorf("raytrace: decode requests: %w", err)
	}
	if len(f.Requests) == 0 {
		return nil, Position{}, ErrEmptyBatch
	}
	if err := validate.Struct(f.Position); err != nil {
		return nil, Position{}, fmt.Errorf("position: %v: %w", err, ErrInvalidRequest)
	}

	for i := range f.Requests {
		if f.Requests[i].ID == uuid.Nil {
			f.Requests[i].ID = uuid.New()
		}
		if err := f.Requests[i].Validate(); err != nil {
			return nil, Position{}, fmt.Errorf("requests[%d]: %w", i, err)
		}
	}

	return f.Requests, f.Position, nil
}

// WriteRequests encodes reqs and pos in the File layout.
func WriteRequests(w io.Writer, reqs []Request, pos Position) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Position: pos, Requests: reqs}); err != nil {
		return fmt.Errorf("raytrace: encode requests: %w", err)
	}

	return enc.Close()
}
