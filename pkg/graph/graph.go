// Package graph defines the canonical graph model and the tolerant
// normalization step that produces it from loosely-shaped JSON input.
//
// All layout strategies consume the canonical form: a stable-ordered node
// list with resolved identities and an edge list with resolved endpoint
// fields. Normalization is deliberately forgiving - malformed input degrades
// to an empty graph rather than an error, because the ingestion surface
// (free-form text entry, API bodies) is where parse feedback belongs.
package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// MarshalGraph converts a canonical graph to indented JSON bytes.
func MarshalGraph(g Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraphFile writes a canonical graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGraphTo(g, f)
}

// ReadGraphFile reads a JSON file and returns the normalized graph.
// File access errors are returned; malformed content is not an error and
// normalizes to an empty graph.
func ReadGraphFile(path string) (Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Graph{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Normalize(data), nil
}

// ReadGraph normalizes graph JSON from an io.Reader.
// Use ReadGraphFile for files or pass bytes.NewReader for in-memory data.
func ReadGraph(r io.Reader) (Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Graph{}, fmt.Errorf("read graph: %w", err)
	}
	return Normalize(data), nil
}

func writeGraphTo(g Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
