package walknet

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// LatLng is a coordinate pair as front-end expects it
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type NodeProperties struct {
	Highway      string `json:"highway"`
	Name         string `json:"name"`
	Intersection bool   `json:"intersection"`
}

type Node struct {
	ID         string         `json:"id"`
	Lat        float64        `json:"lat"`
	Lng        float64        `json:"lng"`
	Properties NodeProperties `json:"properties"`
}

// EdgeProperties optional raw values (width, surface, lit) stay null when tag is absent
type EdgeProperties struct {
	Highway string  `json:"highway"`
	Name    string  `json:"name"`
	Length  float64 `json:"length"`
	Width   *string `json:"width"`
	Surface *string `json:"surface"`
	Lit     *string `json:"lit"`
	Foot    string  `json:"foot"`
}

type Edge struct {
	ID          string         `json:"id"`
	From        string         `json:"from"`
	To          string         `json:"to"`
	Coordinates [2]LatLng      `json:"coordinates"`
	Properties  EdgeProperties `json:"properties"`
}

// WalkableArea is a classified, renderable view over Edge
type WalkableArea struct {
	ID          string         `json:"id"`
	Type        AreaType       `json:"type"`
	Coordinates [2]LatLng      `json:"coordinates"`
	Properties  EdgeProperties `json:"properties"`
}

type AdjacencyEntry struct {
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
	EdgeID   string  `json:"edge_id"`
}

type Metadata struct {
	Area        string      `json:"area"`
	Bounds      BoundingBox `json:"bounds"`
	NodeCount   int         `json:"node_count"`
	EdgeCount   int         `json:"edge_count"`
	GeneratedAt string      `json:"generated_at"`
}

// NetworkDocument is the undirected-simple export artifact.
// Nodes and Graph keep source insertion order when serialized
type NetworkDocument struct {
	Metadata      Metadata                                         `json:"metadata"`
	Nodes         *orderedmap.OrderedMap[string, Node]             `json:"nodes"`
	Edges         []Edge                                           `json:"edges"`
	WalkableAreas []WalkableArea                                   `json:"walkable_areas"`
	Graph         *orderedmap.OrderedMap[string, []AdjacencyEntry] `json:"graph"`
}

// Validate checks metadata counters, edge endpoints and adjacency coverage
func (doc *NetworkDocument) Validate() error {
	if doc.Nodes == nil || doc.Graph == nil {
		return fmt.Errorf("Document has no node or graph mapping")
	}
	if doc.Metadata.NodeCount != doc.Nodes.Len() {
		return fmt.Errorf("node_count is %d, but there are %d nodes", doc.Metadata.NodeCount, doc.Nodes.Len())
	}
	if doc.Metadata.EdgeCount != len(doc.Edges) {
		return fmt.Errorf("edge_count is %d, but there are %d edges", doc.Metadata.EdgeCount, len(doc.Edges))
	}
	if len(doc.WalkableAreas) != len(doc.Edges) {
		return fmt.Errorf("There are %d walkable areas for %d edges", len(doc.WalkableAreas), len(doc.Edges))
	}
	seen := make(map[string]struct{}, len(doc.Edges))
	for _, edge := range doc.Edges {
		if _, ok := seen[edge.ID]; ok {
			return fmt.Errorf("Duplicate edge ID '%s'", edge.ID)
		}
		seen[edge.ID] = struct{}{}
		if _, ok := doc.Nodes.Get(edge.From); !ok {
			return fmt.Errorf("Edge '%s' refers to missing node '%s'", edge.ID, edge.From)
		}
		if _, ok := doc.Nodes.Get(edge.To); !ok {
			return fmt.Errorf("Edge '%s' refers to missing node '%s'", edge.ID, edge.To)
		}
	}
	if doc.Graph.Len() != doc.Nodes.Len() {
		return fmt.Errorf("Adjacency covers %d nodes, but there are %d nodes", doc.Graph.Len(), doc.Nodes.Len())
	}
	return nil
}

// GraphologyDocument is the keyed-multigraph export artifact (graphology serialization format)
type GraphologyDocument struct {
	Attributes map[string]interface{} `json:"attributes"`
	Nodes      []GraphologyNode       `json:"nodes"`
	Edges      []GraphologyEdge       `json:"edges"`
}

type GraphologyNodeAttributes struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Highway string  `json:"highway"`
	Name    string  `json:"name"`
}

type GraphologyNode struct {
	Key        string                   `json:"key"`
	Attributes GraphologyNodeAttributes `json:"attributes"`
}

type GraphologyEdgeAttributes struct {
	Highway string  `json:"highway"`
	Length  float64 `json:"length"`
	Surface string  `json:"surface"`
	Foot    string  `json:"foot"`
}

type GraphologyEdge struct {
	Key        string                   `json:"key"`
	Source     string                   `json:"source"`
	Target     string                   `json:"target"`
	Attributes GraphologyEdgeAttributes `json:"attributes"`
}
