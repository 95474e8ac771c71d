package walknet

import (
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

type directedPair struct {
	source osm.NodeID
	target osm.NodeID
}

// prepareWalkGraph builds a simplified directed multigraph from walkable ways:
//   - ways are split into edges at nodes used more than once (way ends count twice);
//   - every segment gives two opposite edges since pedestrians are not bound by `oneway`;
//   - nodes outside region are cut off together with their edges;
//   - unless retainAll is set only the largest weakly connected component survives
func (data *OSMDataRaw) prepareWalkGraph(region Region, retainAll bool, logger *log.Logger) *RawGraph {
	st := time.Now()
	useCount := make(map[osm.NodeID]int)
	for _, way := range data.ways {
		for i, wayNode := range way.Nodes {
			if _, ok := data.nodes[wayNode.ID]; !ok {
				continue
			}
			if i == 0 || i == len(way.Nodes)-1 {
				useCount[wayNode.ID] += 2
			} else {
				useCount[wayNode.ID]++
			}
		}
	}

	builder := newGraphBuilder()
	missingNodes := 0
	for _, way := range data.ways {
		segment := []osm.NodeID{}
		for i, wayNode := range way.Nodes {
			if _, ok := data.nodes[wayNode.ID]; !ok {
				// Split way at unknown node: extracts often miss nodes behind their border
				missingNodes++
				builder.addSegment(data, way, segment)
				segment = []osm.NodeID{}
				continue
			}
			segment = append(segment, wayNode.ID)
			if len(segment) > 1 && (useCount[wayNode.ID] > 1 || i == len(way.Nodes)-1) {
				builder.addSegment(data, way, segment)
				segment = []osm.NodeID{wayNode.ID}
			}
		}
		builder.addSegment(data, way, segment)
	}
	if missingNodes > 0 {
		logger.Warn("Ways refer to nodes which are not present in data", "count", missingNodes)
	}

	builder.truncate(data, region)
	if !retainAll {
		builder.keepLargestComponent()
	}
	graph := builder.rawGraph(data)
	logger.Debug("Walk graph prepared", "nodes", len(graph.Nodes), "edges", len(graph.Edges), "elapsed", time.Since(st).Round(time.Millisecond))
	return graph
}

type graphBuilder struct {
	nodeOrder []osm.NodeID
	nodesSeen map[osm.NodeID]struct{}
	edges     []RawEdge
	keys      map[directedPair]int
}

func newGraphBuilder() *graphBuilder {
	return &graphBuilder{
		nodeOrder: []osm.NodeID{},
		nodesSeen: make(map[osm.NodeID]struct{}),
		edges:     []RawEdge{},
		keys:      make(map[directedPair]int),
	}
}

func (builder *graphBuilder) addNode(id osm.NodeID) {
	if _, ok := builder.nodesSeen[id]; ok {
		return
	}
	builder.nodesSeen[id] = struct{}{}
	builder.nodeOrder = append(builder.nodeOrder, id)
}

func (builder *graphBuilder) addSegment(data *OSMDataRaw, way *osm.Way, segment []osm.NodeID) {
	if len(segment) < 2 {
		return
	}
	line := make(orb.LineString, 0, len(segment))
	for _, nodeID := range segment {
		node := data.nodes[nodeID]
		line = append(line, orb.Point{node.Lon, node.Lat})
	}
	length := strconv.FormatFloat(getSphericalLength(line), 'f', -1, 64)
	source, target := segment[0], segment[len(segment)-1]
	builder.addNode(source)
	builder.addNode(target)
	builder.addEdge(source, target, edgeTags(way, length, false))
	builder.addEdge(target, source, edgeTags(way, length, true))
}

func (builder *graphBuilder) addEdge(source, target osm.NodeID, tags osm.Tags) {
	pair := directedPair{source, target}
	key := builder.keys[pair]
	builder.keys[pair] = key + 1
	builder.edges = append(builder.edges, RawEdge{
		Source: source,
		Target: target,
		Key:    key,
		Tags:   tags,
	})
}

func edgeTags(way *osm.Way, length string, reversed bool) osm.Tags {
	tags := make(osm.Tags, 0, len(way.Tags)+3)
	tags = append(tags, way.Tags...)
	tags = append(tags,
		osm.Tag{Key: "osmid", Value: strconv.FormatInt(int64(way.ID), 10)},
		osm.Tag{Key: "length", Value: length},
		osm.Tag{Key: "reversed", Value: strconv.FormatBool(reversed)},
	)
	return tags
}

// truncate drops nodes outside region with every incident edge
func (builder *graphBuilder) truncate(data *OSMDataRaw, region Region) {
	inside := make(map[osm.NodeID]struct{}, len(builder.nodeOrder))
	for _, nodeID := range builder.nodeOrder {
		node := data.nodes[nodeID]
		if region.Contains(orb.Point{node.Lon, node.Lat}) {
			inside[nodeID] = struct{}{}
		}
	}
	builder.retain(inside)
}

// keepLargestComponent keeps nodes of the largest weakly connected component.
// Ties go to the component met first in node order
func (builder *graphBuilder) keepLargestComponent() {
	if len(builder.nodeOrder) == 0 {
		return
	}
	index := make(map[osm.NodeID]int, len(builder.nodeOrder))
	for i, nodeID := range builder.nodeOrder {
		index[nodeID] = i
	}
	components := newDisjointSet(len(builder.nodeOrder))
	for _, edge := range builder.edges {
		components.union(index[edge.Source], index[edge.Target])
	}
	sizes := make(map[int]int)
	best, bestSize := -1, 0
	for i := range builder.nodeOrder {
		root := components.find(i)
		sizes[root]++
	}
	for i := range builder.nodeOrder {
		root := components.find(i)
		if sizes[root] > bestSize {
			best, bestSize = root, sizes[root]
		}
	}
	keep := make(map[osm.NodeID]struct{}, bestSize)
	for i, nodeID := range builder.nodeOrder {
		if components.find(i) == best {
			keep[nodeID] = struct{}{}
		}
	}
	builder.retain(keep)
}

// retain keeps given nodes and edges between them. Nodes left without edges are dropped too
func (builder *graphBuilder) retain(keep map[osm.NodeID]struct{}) {
	edges := make([]RawEdge, 0, len(builder.edges))
	touched := make(map[osm.NodeID]struct{}, len(keep))
	for _, edge := range builder.edges {
		_, okSource := keep[edge.Source]
		_, okTarget := keep[edge.Target]
		if !okSource || !okTarget {
			continue
		}
		edges = append(edges, edge)
		touched[edge.Source] = struct{}{}
		touched[edge.Target] = struct{}{}
	}
	nodeOrder := make([]osm.NodeID, 0, len(touched))
	for _, nodeID := range builder.nodeOrder {
		if _, ok := touched[nodeID]; ok {
			nodeOrder = append(nodeOrder, nodeID)
		}
	}
	builder.edges = edges
	builder.nodeOrder = nodeOrder
}

// rawGraph assembles result. Node tags are OSM tags plus coordinates and number of distinct neighbours
func (builder *graphBuilder) rawGraph(data *OSMDataRaw) *RawGraph {
	neighbours := make(map[osm.NodeID]map[osm.NodeID]struct{}, len(builder.nodeOrder))
	for _, edge := range builder.edges {
		if _, ok := neighbours[edge.Source]; !ok {
			neighbours[edge.Source] = make(map[osm.NodeID]struct{})
		}
		neighbours[edge.Source][edge.Target] = struct{}{}
	}
	graph := &RawGraph{
		Nodes: make([]RawNode, 0, len(builder.nodeOrder)),
		Edges: builder.edges,
	}
	for _, nodeID := range builder.nodeOrder {
		node := data.nodes[nodeID]
		tags := make(osm.Tags, 0, len(node.Tags)+3)
		tags = append(tags, node.Tags...)
		tags = append(tags,
			osm.Tag{Key: "x", Value: strconv.FormatFloat(node.Lon, 'f', -1, 64)},
			osm.Tag{Key: "y", Value: strconv.FormatFloat(node.Lat, 'f', -1, 64)},
			osm.Tag{Key: "street_count", Value: strconv.Itoa(len(neighbours[nodeID]))},
		)
		graph.Nodes = append(graph.Nodes, RawNode{ID: nodeID, Tags: tags})
	}
	return graph
}

type disjointSet struct {
	parent []int
}

func newDisjointSet(n int) *disjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &disjointSet{parent: parent}
}

func (set *disjointSet) find(i int) int {
	for set.parent[i] != i {
		set.parent[i] = set.parent[set.parent[i]]
		i = set.parent[i]
	}
	return i
}

func (set *disjointSet) union(i, j int) {
	rootI, rootJ := set.find(i), set.find(j)
	if rootI != rootJ {
		set.parent[rootJ] = rootI
	}
}
