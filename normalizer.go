package walknet

import (
	"fmt"

	"github.com/paulmach/osm"
)

// KeyRegistry hands out identifiers which are unique within one export
type KeyRegistry struct {
	used map[string]struct{}
}

func NewKeyRegistry() *KeyRegistry {
	return &KeyRegistry{
		used: make(map[string]struct{}),
	}
}

// Claim returns base itself if it is still free, otherwise the first free of "base-1", "base-2", ...
// Returned key is marked as used
func (registry *KeyRegistry) Claim(base string) string {
	key := base
	for i := 1; ; i++ {
		if _, ok := registry.used[key]; !ok {
			break
		}
		key = fmt.Sprintf("%s-%d", base, i)
	}
	registry.used[key] = struct{}{}
	return key
}

type keyedEdge struct {
	key string
	RawEdge
}

// normalizeKeyedMultigraph keeps every parallel edge and assigns it a disambiguated string key
func normalizeKeyedMultigraph(raw *RawGraph) []keyedEdge {
	registry := NewKeyRegistry()
	edges := make([]keyedEdge, 0, len(raw.Edges))
	for _, edge := range raw.Edges {
		base := fmt.Sprintf("%d-%d-%d", edge.Source, edge.Target, edge.Key)
		edges = append(edges, keyedEdge{
			key:     registry.Claim(base),
			RawEdge: edge,
		})
	}
	return edges
}

type nodePair struct {
	a osm.NodeID
	b osm.NodeID
}

func unorderedPair(u, v osm.NodeID) nodePair {
	if u > v {
		u, v = v, u
	}
	return nodePair{u, v}
}

// normalizeUndirected discards direction. Unless keepParallel is set only the first edge of every
// unordered node pair survives, keeping orientation it was met with
func normalizeUndirected(raw *RawGraph, keepParallel bool) []RawEdge {
	edges := make([]RawEdge, 0, len(raw.Edges))
	seen := make(map[nodePair]struct{}, len(raw.Edges))
	for _, edge := range raw.Edges {
		pair := unorderedPair(edge.Source, edge.Target)
		if _, ok := seen[pair]; ok && !keepParallel {
			continue
		}
		seen[pair] = struct{}{}
		edges = append(edges, edge)
	}
	return edges
}
