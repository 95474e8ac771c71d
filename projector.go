package walknet

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// parseFloatTag parses numeric tag value. Returns ok = false when tag is absent
func parseFloatTag(tags osm.Tags, key string) (float64, bool, error) {
	raw, ok := findTag(tags, key)
	if !ok {
		return 0, false, nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, true, errors.Wrapf(ErrMalformedTag, "'%s' should be numeric, got '%s'", key, raw)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, true, errors.Wrapf(ErrMalformedTag, "'%s' should be finite, got '%s'", key, raw)
	}
	return value, true, nil
}

// nodeCoordinates returns (lat, lng) taken from 'y' and 'x' tags. Returns ok = false if any of them is absent
func nodeCoordinates(raw RawNode) (float64, float64, bool, error) {
	lat, hasLat, err := parseFloatTag(raw.Tags, "y")
	if err != nil {
		return 0, 0, false, errors.Wrapf(err, "node %d", raw.ID)
	}
	lng, hasLng, err := parseFloatTag(raw.Tags, "x")
	if err != nil {
		return 0, 0, false, errors.Wrapf(err, "node %d", raw.ID)
	}
	return lat, lng, hasLat && hasLng, nil
}

// edgeLength returns 'length' tag in meters (defaults applied). Negative values are rejected
func edgeLength(tags osm.Tags, defaults tagDefaults) (float64, error) {
	raw := defaults.value(tags, "length")
	length, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedTag, "'length' should be numeric, got '%s'", raw)
	}
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return 0, errors.Wrapf(ErrMalformedTag, "'length' should be finite, got '%s'", raw)
	}
	if length < 0 {
		return 0, errors.Wrapf(ErrMalformedTag, "'length' should be non-negative, got '%s'", raw)
	}
	return length, nil
}

// projectGraphologyNode keyed-multigraph mode expects coordinates on every node
func projectGraphologyNode(raw RawNode) (GraphologyNode, error) {
	lat, lng, ok, err := nodeCoordinates(raw)
	if err != nil {
		return GraphologyNode{}, err
	}
	if !ok {
		return GraphologyNode{}, errors.Wrapf(ErrMalformedTag, "node %d has no coordinates", raw.ID)
	}
	return GraphologyNode{
		Key: nodeKey(raw.ID),
		Attributes: GraphologyNodeAttributes{
			Lat:     lat,
			Lng:     lng,
			Highway: nodeDefaults.value(raw.Tags, "highway"),
			Name:    nodeDefaults.value(raw.Tags, "name"),
		},
	}, nil
}

func projectGraphologyEdge(key string, raw RawEdge) (GraphologyEdge, error) {
	length, err := edgeLength(raw.Tags, graphologyEdgeDefaults)
	if err != nil {
		return GraphologyEdge{}, errors.Wrapf(err, "edge '%s'", key)
	}
	return GraphologyEdge{
		Key:    key,
		Source: nodeKey(raw.Source),
		Target: nodeKey(raw.Target),
		Attributes: GraphologyEdgeAttributes{
			Highway: graphologyEdgeDefaults.value(raw.Tags, "highway"),
			Length:  length,
			Surface: graphologyEdgeDefaults.value(raw.Tags, "surface"),
			Foot:    graphologyEdgeDefaults.value(raw.Tags, "foot"),
		},
	}, nil
}

// projectNetworkNode returns ok = false for nodes without coordinates: those are excluded in undirected-simple mode
func projectNetworkNode(raw RawNode) (Node, bool, error) {
	lat, lng, ok, err := nodeCoordinates(raw)
	if err != nil || !ok {
		return Node{}, false, err
	}
	return Node{
		ID:  nodeKey(raw.ID),
		Lat: lat,
		Lng: lng,
		Properties: NodeProperties{
			Highway:      nodeDefaults.value(raw.Tags, "highway"),
			Name:         nodeDefaults.value(raw.Tags, "name"),
			Intersection: isTruthy(raw.Tags, "intersection"),
		},
	}, true, nil
}

func projectEdgeProperties(tags osm.Tags) (EdgeProperties, error) {
	length, err := edgeLength(tags, networkEdgeDefaults)
	if err != nil {
		return EdgeProperties{}, err
	}
	return EdgeProperties{
		Highway: networkEdgeDefaults.value(tags, "highway"),
		Name:    networkEdgeDefaults.value(tags, "name"),
		Length:  length,
		Width:   networkEdgeDefaults.lookup(tags, "width"),
		Surface: networkEdgeDefaults.lookup(tags, "surface"),
		Lit:     networkEdgeDefaults.lookup(tags, "lit"),
		Foot:    networkEdgeDefaults.value(tags, "foot"),
	}, nil
}
