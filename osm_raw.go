package walknet

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// OSMDataRaw holds nodes and walkable ways as they were read from OSM data
type OSMDataRaw struct {
	nodes map[osm.NodeID]*osm.Node
	ways  []*osm.Way
	// number of ways dropped by walk filter
	skippedWays int
}

// newScanner guesses format by file extension
func newScanner(ctx context.Context, filename string, r io.Reader) (OSMScanner, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".osm", ".xml":
		return osmxml.New(ctx, r), nil
	case ".pbf":
		return osmpbf.New(ctx, r, 4), nil
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
}

// readOSM scans nodes and ways in one pass. Only ways which pedestrians could use are kept
func readOSM(scanner OSMScanner, logger *log.Logger) (*OSMDataRaw, error) {
	st := time.Now()
	data := OSMDataRaw{
		nodes: make(map[osm.NodeID]*osm.Node),
		ways:  []*osm.Way{},
	}
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			data.nodes[obj.ID] = obj
		case *osm.Way:
			if len(obj.Nodes) < 2 {
				logger.Debug("Way with less than 2 nodes met", "way", obj.ID, "nodes", len(obj.Nodes))
				data.skippedWays++
				continue
			}
			if !isAllowedFor(AGENT_WALK, obj.Tags) {
				data.skippedWays++
				continue
			}
			data.ways = append(data.ways, obj)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	logger.Debug("OSM data scanned", "nodes", len(data.nodes), "ways", len(data.ways), "skipped_ways", data.skippedWays, "elapsed", time.Since(st).Round(time.Millisecond))
	return &data, nil
}
