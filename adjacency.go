package walknet

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// BuildAdjacency returns bidirectional adjacency list: every edge (u, v) gives one entry under u pointing to v and
// one under v pointing to u. Every node of 'nodes' gets a list even if no edge touches it.
// Entries follow edges order
func BuildAdjacency(nodes *orderedmap.OrderedMap[string, Node], edges []Edge) *orderedmap.OrderedMap[string, []AdjacencyEntry] {
	graph := orderedmap.New[string, []AdjacencyEntry]()
	for pair := nodes.Oldest(); pair != nil; pair = pair.Next() {
		graph.Set(pair.Key, []AdjacencyEntry{})
	}
	for _, edge := range edges {
		appendAdjacency(graph, edge.From, AdjacencyEntry{To: edge.To, Distance: edge.Properties.Length, EdgeID: edge.ID})
		appendAdjacency(graph, edge.To, AdjacencyEntry{To: edge.From, Distance: edge.Properties.Length, EdgeID: edge.ID})
	}
	return graph
}

func appendAdjacency(graph *orderedmap.OrderedMap[string, []AdjacencyEntry], nodeID string, entry AdjacencyEntry) {
	list, _ := graph.Get(nodeID)
	graph.Set(nodeID, append(list, entry))
}
