package graph

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// =============================================================================
// Normalization - Loose Input → Canonical Graph
// =============================================================================

// Normalize decodes loosely-shaped graph JSON into a canonical Graph.
//
// The input is expected to be an object with "nodes" and "edges" arrays, but
// any other shape degrades to an empty graph - Normalize never fails. This
// supports free-form text entry upstream: parse errors surface there, not here.
func Normalize(data []byte) Graph {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Graph{}
	}
	return NormalizeValue(raw)
}

// NormalizeValue normalizes an already-decoded value.
//
// Node identity comes from an explicit "id" field when present, otherwise the
// node's zero-based input index. Numeric identities are formatted without a
// fraction part so that edges referencing them by number still resolve.
// Edge endpoints accept alias spellings: "source" falls back to "from" and
// "target" falls back to "to". Endpoints are not validated - unresolvable or
// self-referential edges pass through to the layout stage, which owns
// dropping them.
func NormalizeValue(v any) Graph {
	obj, ok := v.(map[string]any)
	if !ok {
		return Graph{}
	}

	rawNodes, _ := obj["nodes"].([]any)
	rawEdges, _ := obj["edges"].([]any)

	var g Graph
	for i, rn := range rawNodes {
		g.Nodes = append(g.Nodes, normalizeNode(rn, i))
	}
	for _, re := range rawEdges {
		g.Edges = append(g.Edges, normalizeEdge(re))
	}
	return g
}

func normalizeNode(v any, index int) Node {
	m, ok := v.(map[string]any)
	if !ok {
		// Bare scalars ("a", 3) are treated as the identity itself.
		if id := identString(v); id != "" {
			return Node{ID: id}
		}
		return Node{ID: strconv.Itoa(index)}
	}

	id := identString(m["id"])
	if id == "" {
		id = strconv.Itoa(index)
	}

	label, _ := m["label"].(string)
	return Node{ID: id, Label: label}
}

func normalizeEdge(v any) Edge {
	m, ok := v.(map[string]any)
	if !ok {
		// Malformed entry: empty endpoints never resolve, so the layout
		// stage drops it.
		return Edge{}
	}

	return Edge{
		Source:         identAlias(m, "source", "from"),
		Target:         identAlias(m, "target", "to"),
		Classification: classAlias(m),
	}
}

// identAlias resolves an endpoint field, preferring the primary spelling.
func identAlias(m map[string]any, primary, fallback string) string {
	if id := identString(m[primary]); id != "" {
		return id
	}
	return identString(m[fallback])
}

func classAlias(m map[string]any) string {
	if c, ok := m["classification"].(string); ok && c != "" {
		return c
	}
	c, _ := m["type"].(string)
	return c
}

// identString converts an identity value to its canonical string form.
// JSON numbers decode as float64; integral values format without a fraction
// part ("3", not "3.0") so node ids and edge endpoints written as numbers
// agree.
func identString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case json.Number:
		return id.String()
	case int:
		return strconv.Itoa(id)
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}
