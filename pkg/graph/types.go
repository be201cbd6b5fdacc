package graph

// =============================================================================
// Canonical Graph Model
// =============================================================================

// Graph is the canonical graph representation shared by every layout
// strategy. It is produced by Normalize from loosely-shaped input and is
// never mutated by the layout stage.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is a vertex with a resolved identity. Identities are unique within
// one layout invocation; if the input violates that, the last occurrence
// wins in lookups and earlier nodes still receive positions.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"` // Display label (defaults to ID)
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed connection between two identities. Classification is an
// optional grouping tag used only for styling, never for layout math.
// Endpoints are not validated here - the layout stage drops edges whose
// endpoints don't resolve.
type Edge struct {
	Source         string `json:"source"`
	Target         string `json:"target"`
	Classification string `json:"classification,omitempty"`
}

// NodeCount returns the number of nodes in the graph.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges in the graph.
func (g Graph) EdgeCount() int { return len(g.Edges) }

// Index builds an identity→position lookup for the node list.
// Duplicate identities resolve to the last occurrence.
func (g Graph) Index() map[string]int {
	m := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		m[n.ID] = i
	}
	return m
}
