package walknet

import (
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// KeyedMultigraphPipeline keeps the directed multigraph and exports it in graphology format
type KeyedMultigraphPipeline struct {
	filename string
}

func NewKeyedMultigraphPipeline(options ...func(*KeyedMultigraphPipeline)) *KeyedMultigraphPipeline {
	pipeline := &KeyedMultigraphPipeline{
		filename: GRAPHOLOGY_FILENAME,
	}
	for _, option := range options {
		option(pipeline)
	}
	return pipeline
}

func WithGraphologyFilename(filename string) func(*KeyedMultigraphPipeline) {
	return func(pipeline *KeyedMultigraphPipeline) {
		pipeline.filename = filename
	}
}

func (pipeline *KeyedMultigraphPipeline) Mode() Mode {
	return MODE_KEYED_MULTIGRAPH
}

func (pipeline *KeyedMultigraphPipeline) Build(raw *RawGraph) ([]Artifact, *Summary, error) {
	doc, err := BuildGraphologyDocument(raw)
	if err != nil {
		return nil, nil, err
	}
	summary := &Summary{
		Mode:  pipeline.Mode(),
		Nodes: len(doc.Nodes),
		Edges: len(doc.Edges),
	}
	return []Artifact{{Name: pipeline.filename, Payload: doc}}, summary, nil
}

// BuildGraphologyDocument projects every node and every parallel edge between known nodes; edge keys are disambiguated
func BuildGraphologyDocument(raw *RawGraph) (*GraphologyDocument, error) {
	if raw == nil {
		raw = &RawGraph{}
	}
	doc := &GraphologyDocument{
		Attributes: map[string]interface{}{},
		Nodes:      make([]GraphologyNode, 0, len(raw.Nodes)),
		Edges:      make([]GraphologyEdge, 0, len(raw.Edges)),
	}
	known := make(map[osm.NodeID]struct{}, len(raw.Nodes))
	for _, rawNode := range raw.Nodes {
		node, err := projectGraphologyNode(rawNode)
		if err != nil {
			return nil, errors.Wrap(err, "Can't project node")
		}
		doc.Nodes = append(doc.Nodes, node)
		known[rawNode.ID] = struct{}{}
	}
	// Edges pointing to unknown nodes are dropped before keys are claimed
	connected := &RawGraph{Edges: make([]RawEdge, 0, len(raw.Edges))}
	for _, edge := range raw.Edges {
		_, okSource := known[edge.Source]
		_, okTarget := known[edge.Target]
		if !okSource || !okTarget {
			continue
		}
		connected.Edges = append(connected.Edges, edge)
	}
	for _, edge := range normalizeKeyedMultigraph(connected) {
		projected, err := projectGraphologyEdge(edge.key, edge.RawEdge)
		if err != nil {
			return nil, errors.Wrap(err, "Can't project edge")
		}
		doc.Edges = append(doc.Edges, projected)
	}
	return doc, nil
}
