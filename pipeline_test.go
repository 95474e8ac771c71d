package walknet

import (
	"context"
	"encoding/json"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func newTestUndirectedPipeline(options ...func(*UndirectedSimplePipeline)) *UndirectedSimplePipeline {
	options = append([]func(*UndirectedSimplePipeline){
		WithBounds(BoundingBox{North: 59.41, South: 59.40, East: 17.95, West: 17.94}),
		WithClock(fixedClock),
	}, options...)
	return NewUndirectedSimplePipeline(options...)
}

func TestUndirectedBuildDocument(t *testing.T) {
	doc, err := newTestUndirectedPipeline().BuildDocument(sampleRawGraph())
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	nodeIDs := []string{}
	for pair := doc.Nodes.Oldest(); pair != nil; pair = pair.Next() {
		nodeIDs = append(nodeIDs, pair.Key)
	}
	assert.Equal(t, []string{"1", "2", "3", "5"}, nodeIDs, "node without coordinates should be dropped")

	require.Len(t, doc.Edges, 2)
	assert.Equal(t, "edge_1_2", doc.Edges[0].ID)
	assert.Equal(t, "edge_2_3", doc.Edges[1].ID)
	assert.Equal(t, [2]LatLng{{Lat: 59.4, Lng: 17.94}, {Lat: 59.401, Lng: 17.94}}, doc.Edges[0].Coordinates)
	assert.Equal(t, 10.0, doc.Edges[0].Properties.Length)

	require.Len(t, doc.WalkableAreas, 2)
	assert.Equal(t, AREA_PATH, doc.WalkableAreas[0].Type)
	assert.Equal(t, AREA_SIDEWALK, doc.WalkableAreas[1].Type)
	for i := range doc.Edges {
		assert.Equal(t, doc.Edges[i].ID, doc.WalkableAreas[i].ID)
		assert.Equal(t, doc.Edges[i].Coordinates, doc.WalkableAreas[i].Coordinates)
		assert.Equal(t, doc.Edges[i].Properties, doc.WalkableAreas[i].Properties)
	}

	assert.Equal(t, Metadata{
		Area:        DEFAULT_AREA_NAME,
		Bounds:      BoundingBox{North: 59.41, South: 59.40, East: 17.95, West: 17.94},
		NodeCount:   4,
		EdgeCount:   2,
		GeneratedAt: "2024-01-01T00:00:00Z",
	}, doc.Metadata)

	adjacency, ok := doc.Graph.Get("2")
	require.True(t, ok)
	assert.Equal(t, []AdjacencyEntry{
		{To: "1", Distance: 10, EdgeID: "edge_1_2"},
		{To: "3", Distance: 20.5, EdgeID: "edge_2_3"},
	}, adjacency)
	isolated, ok := doc.Graph.Get("5")
	require.True(t, ok)
	assert.Empty(t, isolated)
}

func TestUndirectedKeepParallel(t *testing.T) {
	doc, err := newTestUndirectedPipeline(WithKeepParallel(true)).BuildDocument(sampleRawGraph())
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	ids := make([]string, 0, len(doc.Edges))
	for _, edge := range doc.Edges {
		ids = append(ids, edge.ID)
	}
	assert.Equal(t, []string{"edge_1_2", "edge_2_1", "edge_2_3", "edge_1_2-1"}, ids)
}

func TestUndirectedEmptyGraph(t *testing.T) {
	pipeline := newTestUndirectedPipeline()
	for _, raw := range []*RawGraph{nil, {}} {
		artifacts, summary, err := pipeline.Build(raw)
		require.NoError(t, err)
		require.Len(t, artifacts, 3)
		assert.Equal(t, 0, summary.Nodes)
		assert.Equal(t, 0, summary.Edges)

		data, err := json.Marshal(artifacts[0].Payload)
		require.NoError(t, err)
		var decoded map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.JSONEq(t, `{}`, string(decoded["nodes"]))
		assert.JSONEq(t, `[]`, string(decoded["edges"]))
		assert.JSONEq(t, `[]`, string(decoded["walkable_areas"]))
		assert.JSONEq(t, `{}`, string(decoded["graph"]))

		areas, err := json.Marshal(artifacts[1].Payload)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(areas))
		graph, err := json.Marshal(artifacts[2].Payload)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(graph))
	}
}

func TestUndirectedBuildArtifacts(t *testing.T) {
	artifacts, summary, err := newTestUndirectedPipeline(WithAreaName("Kista test"), WithGeoJSON(true)).Build(sampleRawGraph())
	require.NoError(t, err)

	names := []string{}
	for _, artifact := range artifacts {
		names = append(names, artifact.Name)
	}
	assert.Equal(t, []string{NETWORK_FILENAME, WALKABLE_AREAS_FILENAME, WALK_GRAPH_FILENAME, WALKABLE_GEOJSON_NAME}, names)
	assert.Equal(t, &Summary{Mode: MODE_UNDIRECTED_SIMPLE, Nodes: 4, Edges: 2, WalkableAreas: 2}, summary)

	doc, ok := artifacts[0].Payload.(*NetworkDocument)
	require.True(t, ok)
	assert.Equal(t, "Kista test", doc.Metadata.Area)

	data, err := json.Marshal(artifacts[3].Payload)
	require.NoError(t, err)
	collection, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, collection.Features, 2)
	assert.Equal(t, "edge_2_3", collection.Features[1].ID)
	assert.Equal(t, "sidewalk", collection.Features[1].Properties["type"])
	assert.Equal(t, [][]float64{{17.94, 59.401}, {17.941, 59.402}}, collection.Features[1].Geometry.LineString)
}

func TestNetworkDocumentRoundTrip(t *testing.T) {
	doc, err := newTestUndirectedPipeline().BuildDocument(sampleRawGraph())
	require.NoError(t, err)
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	decoded := NetworkDocument{
		Nodes: orderedmap.New[string, Node](),
		Graph: orderedmap.New[string, []AdjacencyEntry](),
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NoError(t, decoded.Validate())
	assert.Equal(t, doc.Metadata, decoded.Metadata)
	assert.Equal(t, doc.Edges, decoded.Edges)
	assert.Equal(t, doc.WalkableAreas, decoded.WalkableAreas)

	first := decoded.Nodes.Oldest()
	require.NotNil(t, first)
	assert.Equal(t, "1", first.Key)
	node, ok := decoded.Nodes.Get("3")
	require.True(t, ok)
	assert.Equal(t, "Torget", node.Properties.Name)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	edges := raw["edges"].([]interface{})
	properties := edges[0].(map[string]interface{})["properties"].(map[string]interface{})
	assert.Contains(t, properties, "width")
	assert.Nil(t, properties["width"], "absent optional tags should be null")
}

func TestKeyedBuildGraphologyDocument(t *testing.T) {
	raw := sampleRawGraph()
	raw.Nodes = append(raw.Nodes[:3], raw.Nodes[4])
	raw.Edges = append(raw.Edges[:3], raw.Edges[4], makeEdge(1, 2, 0, "length", "11"))

	doc, err := BuildGraphologyDocument(raw)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 4)
	require.Len(t, doc.Edges, 5)

	keys := []string{}
	for _, edge := range doc.Edges {
		keys = append(keys, edge.Key)
	}
	assert.Equal(t, []string{"1-2-0", "2-1-0", "2-3-0", "1-2-1", "1-2-0-1"}, keys)
	assert.Equal(t, "path", doc.Edges[4].Attributes.Highway)
	assert.Equal(t, "asphalt", doc.Edges[2].Attributes.Surface)
	assert.Equal(t, "", doc.Edges[0].Attributes.Surface)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.JSONEq(t, `{}`, string(decoded["attributes"]))
}

func TestKeyedBuild(t *testing.T) {
	_, _, err := NewKeyedMultigraphPipeline().Build(sampleRawGraph())
	assert.True(t, errors.Is(err, ErrMalformedTag), "node without coordinates should fail keyed export, got %v", err)

	artifacts, summary, err := NewKeyedMultigraphPipeline(WithGraphologyFilename("g.json")).Build(nil)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "g.json", artifacts[0].Name)
	assert.Equal(t, &Summary{Mode: MODE_KEYED_MULTIGRAPH}, summary)

	data, err := json.Marshal(artifacts[0].Payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"attributes":{},"nodes":[],"edges":[]}`, string(data))
}

func TestKeyedDropsDanglingEdges(t *testing.T) {
	source := NetworkSourceFunc(func(ctx context.Context, region Region) (*RawGraph, error) {
		return &RawGraph{
			Nodes: []RawNode{makeNode(1, 59.4, 17.94), makeNode(2, 59.401, 17.94)},
			Edges: []RawEdge{
				makeEdge(1, 99, 0, "length", "4"),
				makeEdge(99, 1, 0, "length", "4"),
				makeEdge(1, 2, 0, "length", "10"),
				makeEdge(1, 2, 0, "length", "11"),
			},
		}, nil
	})
	raw, err := source.FetchGraph(context.Background(), sampleRegion)
	require.NoError(t, err)

	doc, err := BuildGraphologyDocument(raw)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 2)
	keys := []string{}
	for _, edge := range doc.Edges {
		keys = append(keys, edge.Key)
		assert.NotEqual(t, "99", edge.Source)
		assert.NotEqual(t, "99", edge.Target)
	}
	assert.Equal(t, []string{"1-2-0", "1-2-0-1"}, keys)
}
