package walknet

import (
	"strconv"
	"time"

	"github.com/paulmach/osm"
)

func makeTags(kv ...string) osm.Tags {
	tags := make(osm.Tags, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		tags = append(tags, osm.Tag{Key: kv[i], Value: kv[i+1]})
	}
	return tags
}

func makeNode(id osm.NodeID, lat, lng float64, kv ...string) RawNode {
	tags := makeTags(kv...)
	tags = append(tags,
		osm.Tag{Key: "y", Value: strconv.FormatFloat(lat, 'f', -1, 64)},
		osm.Tag{Key: "x", Value: strconv.FormatFloat(lng, 'f', -1, 64)},
	)
	return RawNode{ID: id, Tags: tags}
}

func makeEdge(source, target osm.NodeID, key int, kv ...string) RawEdge {
	return RawEdge{Source: source, Target: target, Key: key, Tags: makeTags(kv...)}
}

// sampleRawGraph:
//
//	1 <-> 2 footway, plus parallel 1 -> 2 path
//	2 -> 3 residential with sidewalk
//	3 -> 4 where 4 has no coordinates
//	5 isolated
func sampleRawGraph() *RawGraph {
	return &RawGraph{
		Nodes: []RawNode{
			makeNode(1, 59.4, 17.94, "highway", "crossing"),
			makeNode(2, 59.401, 17.94),
			makeNode(3, 59.402, 17.941, "name", "Torget"),
			{ID: 4, Tags: makeTags("highway", "street_lamp")},
			makeNode(5, 59.403, 17.942),
		},
		Edges: []RawEdge{
			makeEdge(1, 2, 0, "highway", "footway", "length", "10"),
			makeEdge(2, 1, 0, "highway", "footway", "length", "10"),
			makeEdge(2, 3, 0, "highway", "residential", "sidewalk", "yes", "surface", "asphalt", "length", "20.5"),
			makeEdge(3, 4, 0, "length", "5"),
			makeEdge(1, 2, 1, "highway", "path", "length", "12"),
		},
	}
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}
