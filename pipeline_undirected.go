package walknet

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	DEFAULT_AREA_NAME = "Kista, Stockholm"
)

// UndirectedSimplePipeline turns the raw graph into undirected network for pedestrian simulation and
// exports full document, walkable areas and adjacency list
type UndirectedSimplePipeline struct {
	areaName     string
	bounds       BoundingBox
	clock        func() time.Time
	keepParallel bool
	geoJSON      bool
}

func NewUndirectedSimplePipeline(options ...func(*UndirectedSimplePipeline)) *UndirectedSimplePipeline {
	pipeline := &UndirectedSimplePipeline{
		areaName: DEFAULT_AREA_NAME,
		clock:    time.Now,
	}
	for _, option := range options {
		option(pipeline)
	}
	return pipeline
}

func WithAreaName(areaName string) func(*UndirectedSimplePipeline) {
	return func(pipeline *UndirectedSimplePipeline) {
		pipeline.areaName = areaName
	}
}

func WithBounds(bounds BoundingBox) func(*UndirectedSimplePipeline) {
	return func(pipeline *UndirectedSimplePipeline) {
		pipeline.bounds = bounds
	}
}

func WithClock(clock func() time.Time) func(*UndirectedSimplePipeline) {
	return func(pipeline *UndirectedSimplePipeline) {
		pipeline.clock = clock
	}
}

// WithKeepParallel keeps every parallel edge between two nodes instead of the first one only
func WithKeepParallel(keepParallel bool) func(*UndirectedSimplePipeline) {
	return func(pipeline *UndirectedSimplePipeline) {
		pipeline.keepParallel = keepParallel
	}
}

// WithGeoJSON adds walkable areas as GeoJSON FeatureCollection to the artifacts
func WithGeoJSON(geoJSON bool) func(*UndirectedSimplePipeline) {
	return func(pipeline *UndirectedSimplePipeline) {
		pipeline.geoJSON = geoJSON
	}
}

func (pipeline *UndirectedSimplePipeline) Mode() Mode {
	return MODE_UNDIRECTED_SIMPLE
}

func (pipeline *UndirectedSimplePipeline) Build(raw *RawGraph) ([]Artifact, *Summary, error) {
	doc, err := pipeline.BuildDocument(raw)
	if err != nil {
		return nil, nil, err
	}
	artifacts := []Artifact{
		{Name: NETWORK_FILENAME, Payload: doc},
		{Name: WALKABLE_AREAS_FILENAME, Payload: doc.WalkableAreas},
		{Name: WALK_GRAPH_FILENAME, Payload: doc.Graph},
	}
	if pipeline.geoJSON {
		artifacts = append(artifacts, Artifact{Name: WALKABLE_GEOJSON_NAME, Payload: PrepareGeoJSONAreas(doc.WalkableAreas)})
	}
	summary := &Summary{
		Mode:          pipeline.Mode(),
		Nodes:         doc.Nodes.Len(),
		Edges:         len(doc.Edges),
		WalkableAreas: len(doc.WalkableAreas),
	}
	return artifacts, summary, nil
}

// BuildDocument normalizes, projects, classifies and builds adjacency for given raw graph
func (pipeline *UndirectedSimplePipeline) BuildDocument(raw *RawGraph) (*NetworkDocument, error) {
	if raw == nil {
		raw = &RawGraph{}
	}
	nodes := orderedmap.New[string, Node]()
	for _, rawNode := range raw.Nodes {
		node, ok, err := projectNetworkNode(rawNode)
		if err != nil {
			return nil, errors.Wrap(err, "Can't project node")
		}
		if !ok {
			continue
		}
		nodes.Set(node.ID, node)
	}

	registry := NewKeyRegistry()
	edges := []Edge{}
	areas := []WalkableArea{}
	for _, rawEdge := range normalizeUndirected(raw, pipeline.keepParallel) {
		from, okFrom := nodes.Get(nodeKey(rawEdge.Source))
		to, okTo := nodes.Get(nodeKey(rawEdge.Target))
		if !okFrom || !okTo {
			continue
		}
		properties, err := projectEdgeProperties(rawEdge.Tags)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't project edge %d-%d", rawEdge.Source, rawEdge.Target)
		}
		edge := Edge{
			ID:   registry.Claim(fmt.Sprintf("edge_%s_%s", from.ID, to.ID)),
			From: from.ID,
			To:   to.ID,
			Coordinates: [2]LatLng{
				{Lat: from.Lat, Lng: from.Lng},
				{Lat: to.Lat, Lng: to.Lng},
			},
			Properties: properties,
		}
		edges = append(edges, edge)
		areas = append(areas, WalkableArea{
			ID:          edge.ID,
			Type:        ClassifyArea(rawEdge.Tags),
			Coordinates: edge.Coordinates,
			Properties:  edge.Properties,
		})
	}

	return &NetworkDocument{
		Metadata: Metadata{
			Area:        pipeline.areaName,
			Bounds:      pipeline.bounds,
			NodeCount:   nodes.Len(),
			EdgeCount:   len(edges),
			GeneratedAt: pipeline.clock().UTC().Format(time.RFC3339),
		},
		Nodes:         nodes,
		Edges:         edges,
		WalkableAreas: areas,
		Graph:         BuildAdjacency(nodes, edges),
	}, nil
}
