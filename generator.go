package walknet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

const (
	DEFAULT_OUTPUT_DIR = "src/data"
)

// Generator runs one batch: fetch network, build documents, write them
type Generator struct {
	source    NetworkSource
	region    Region
	pipeline  Pipeline
	outputDir string
	logger    *log.Logger
}

func (generator *Generator) String() string {
	return fmt.Sprintf(`
Walk network generator parameters:
	mode: '%s'
	region: '%s'
	output_dir: '%s'
	`,
		generator.pipeline.Mode(),
		generator.region,
		generator.outputDir,
	)
}

func NewGenerator(source NetworkSource, region Region, pipeline Pipeline, options ...func(*Generator)) *Generator {
	generator := &Generator{
		source:    source,
		region:    region,
		pipeline:  pipeline,
		outputDir: DEFAULT_OUTPUT_DIR,
		logger:    discardLogger(),
	}
	for _, option := range options {
		option(generator)
	}
	return generator
}

func WithOutputDir(outputDir string) func(*Generator) {
	return func(generator *Generator) {
		generator.outputDir = outputDir
	}
}

func WithLogger(logger *log.Logger) func(*Generator) {
	return func(generator *Generator) {
		if logger != nil {
			generator.logger = logger
		}
	}
}

// Run executes the whole pipeline. Nothing is written unless every artifact has been built
func (generator *Generator) Run(ctx context.Context) (*Summary, error) {
	if err := generator.region.Validate(); err != nil {
		return nil, err
	}
	generator.logger.Debug(strings.TrimSpace(generator.String()))

	generator.logger.Info("Downloading walk network", "region", generator.region.String())
	st := time.Now()
	raw, err := generator.source.FetchGraph(ctx, generator.region)
	if err != nil {
		return nil, errors.Wrap(err, "Can't fetch network")
	}
	if raw == nil {
		raw = &RawGraph{}
	}
	done(generator.logger, st, "Downloaded network", "nodes", len(raw.Nodes), "edges", len(raw.Edges))
	if raw.IsEmpty() {
		generator.logger.Warn("Network is empty, exporting empty documents")
	}

	st = time.Now()
	generator.logger.Info("Processing network", "mode", generator.pipeline.Mode())
	artifacts, summary, err := generator.pipeline.Build(raw)
	if err != nil {
		return nil, errors.Wrap(err, "Can't process network")
	}
	done(generator.logger, st, "Network processed", "nodes", summary.Nodes, "edges", summary.Edges)

	st = time.Now()
	generator.logger.Info("Exporting network data", "dir", generator.outputDir)
	files, err := NewExporter(generator.outputDir, generator.logger).Export(artifacts)
	if err != nil {
		return nil, errors.Wrap(err, "Can't export network")
	}
	summary.Files = files
	done(generator.logger, st, "Network exported", "files", len(files))
	return summary, nil
}
