package walknet

import (
	"strconv"
	"strings"

	"github.com/paulmach/osm"
)

// RawNode is a source node with its attribute bag.
// Coordinates are carried as tags: 'x' is longitude and 'y' is latitude
type RawNode struct {
	ID   osm.NodeID
	Tags osm.Tags
}

// RawEdge is a directed source edge. Key is the parallel index among edges sharing (Source, Target)
type RawEdge struct {
	Source osm.NodeID
	Target osm.NodeID
	Key    int
	Tags   osm.Tags
}

// RawGraph is a directed multigraph as delivered by a NetworkSource. Order of nodes and edges is preserved
type RawGraph struct {
	Nodes []RawNode
	Edges []RawEdge
}

// IsEmpty reports whether graph has no nodes and no edges
func (g *RawGraph) IsEmpty() bool {
	return g == nil || (len(g.Nodes) == 0 && len(g.Edges) == 0)
}

func nodeKey(id osm.NodeID) string {
	return strconv.FormatInt(int64(id), 10)
}

// findTag returns tag value and whether the tag is present at all
func findTag(tags osm.Tags, key string) (string, bool) {
	for _, tag := range tags {
		if tag.Key == key {
			return tag.Value, true
		}
	}
	return "", false
}

var falsyValues = map[string]struct{}{
	"":      {},
	"no":    {},
	"none":  {},
	"false": {},
	"0":     {},
}

// isTruthy reports whether tag is present and carries a positive value
func isTruthy(tags osm.Tags, key string) bool {
	value, ok := findTag(tags, key)
	if !ok {
		return false
	}
	_, falsy := falsyValues[strings.ToLower(strings.TrimSpace(value))]
	return !falsy
}
