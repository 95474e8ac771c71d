package walknet

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// FileSource reads walk network from local OSM extract (*.osm, *.xml or *.osm.pbf)
type FileSource struct {
	Filename  string
	RetainAll bool
	Logger    *log.Logger
}

func NewFileSource(filename string) *FileSource {
	return &FileSource{
		Filename: filename,
	}
}

func (source *FileSource) FetchGraph(ctx context.Context, region Region) (*RawGraph, error) {
	if err := region.Validate(); err != nil {
		return nil, err
	}
	logger := source.Logger
	if logger == nil {
		logger = discardLogger()
	}
	file, err := os.Open(source.Filename)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "Can't open file: %v", err)
	}
	defer file.Close()

	scanner, err := newScanner(ctx, source.Filename, file)
	if err != nil {
		return nil, errors.Wrap(ErrSourceUnavailable, err.Error())
	}
	defer scanner.Close()

	st := time.Now()
	data, err := readOSM(scanner, logger)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "Can't parse OSM data: %v", err)
	}
	done(logger, st, "OSM file scanned", "file", source.Filename, "nodes", len(data.nodes), "ways", len(data.ways))
	return data.prepareWalkGraph(region, source.RetainAll, logger), nil
}
