package graph

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestGraphFileRoundTrip(t *testing.T) {
	g := Graph{
		Nodes: []Node{{ID: "a"}, {ID: "b", Label: "Bravo"}},
		Edges: []Edge{{Source: "a", Target: "b", Classification: "calls"}},
	}

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}

	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if got.NodeCount() != 2 || got.EdgeCount() != 1 {
		t.Errorf("counts = (%d, %d), want (2, 1)", got.NodeCount(), got.EdgeCount())
	}
	if got.Nodes[1].Label != "Bravo" {
		t.Errorf("Nodes[1].Label = %q, want Bravo", got.Nodes[1].Label)
	}
	if got.Edges[0].Classification != "calls" {
		t.Errorf("Classification = %q, want calls", got.Edges[0].Classification)
	}
}

func TestReadGraphFile_Missing(t *testing.T) {
	if _, err := ReadGraphFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadGraph(t *testing.T) {
	g, err := ReadGraph(strings.NewReader(`{"nodes": [{"id": "a"}], "edges": []}`))
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}
	if g.NodeCount() != 1 || g.Nodes[0].ID != "a" {
		t.Errorf("graph = %+v, want single node a", g)
	}
}

func TestMarshalGraph(t *testing.T) {
	data, err := MarshalGraph(Graph{Nodes: []Node{{ID: "a"}}})
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	if !strings.Contains(string(data), `"id": "a"`) {
		t.Errorf("marshaled graph missing node:\n%s", data)
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := (Node{ID: "a"}).DisplayLabel(); got != "a" {
		t.Errorf("DisplayLabel = %q, want identity fallback a", got)
	}
	if got := (Node{ID: "a", Label: "Alpha"}).DisplayLabel(); got != "Alpha" {
		t.Errorf("DisplayLabel = %q, want Alpha", got)
	}
}
