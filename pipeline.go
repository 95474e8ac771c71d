package walknet

// Default artifact file names
const (
	GRAPHOLOGY_FILENAME     = "kista_walk_network.graphology.json"
	NETWORK_FILENAME        = "kista_walk_network.json"
	WALKABLE_AREAS_FILENAME = "walkable_areas.json"
	WALK_GRAPH_FILENAME     = "walk_graph.json"
	WALKABLE_GEOJSON_NAME   = "walkable_areas.geojson"
)

// Mode names export flavor
type Mode uint16

const (
	MODE_KEYED_MULTIGRAPH = Mode(iota + 1)
	MODE_UNDIRECTED_SIMPLE
	MODE_UNDEFINED = Mode(0)
)

func (iotaIdx Mode) String() string {
	return [...]string{"undefined", "keyed-multigraph", "undirected-simple"}[iotaIdx]
}

// Artifact is a document to be written as JSON file 'Name'
type Artifact struct {
	Name    string
	Payload interface{}
}

// Summary describes outcome of one run
type Summary struct {
	Mode          Mode
	Nodes         int
	Edges         int
	WalkableAreas int
	Files         []string
}

// Pipeline turns raw graph into artifacts. Implementations differ in graph normalization and document shape
type Pipeline interface {
	Mode() Mode
	Build(raw *RawGraph) ([]Artifact, *Summary, error)
}
