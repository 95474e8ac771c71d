package main

import (
	"context"
	"flag"
	"os"

	"github.com/LdDl/walknet"
)

var (
	configFile   = flag.String("config", "", "Filename of TOML configuration (optional). Area name, region, output directory and Overpass settings are taken from it")
	out          = flag.String("out", "", "Output directory. Default is 'src/data'")
	osmFile      = flag.String("osm", "", "Filename of local *.osm / *.osm.pbf extract to use instead of Overpass API (optional)")
	retainAll    = flag.Bool("retain-all", false, "Keep every connected component instead of the largest one")
	keepParallel = flag.Bool("keep-parallel", false, "Keep every parallel edge between two nodes instead of the first one")
	geoJSON      = flag.Bool("geojson", false, "Additionally export walkable areas as GeoJSON FeatureCollection")
	verbose      = flag.Bool("verbose", false, "Print debug messages")
)

func main() {

	flag.Parse()

	logger := walknet.NewLogger(os.Stdout, *verbose)

	if err := walknet.LoadDotEnv(); err != nil {
		logger.Error("Can't load .env", "err", err)
		os.Exit(1)
	}
	cfg := walknet.DefaultNetworkConfig()
	if *configFile != "" {
		var err error
		cfg, err = walknet.LoadConfig(*configFile, cfg)
		if err != nil {
			logger.Error("Error generating walk network", "err", err)
			os.Exit(1)
		}
	}
	cfg = cfg.ApplyEnv()
	if *out != "" {
		cfg.OutputDir = *out
	}

	region, err := cfg.Region.Region()
	if err != nil {
		logger.Error("Error generating walk network", "err", err)
		os.Exit(1)
	}
	source, err := cfg.Source(*osmFile, *retainAll, logger)
	if err != nil {
		logger.Error("Error generating walk network", "err", err)
		os.Exit(1)
	}

	pipeline := walknet.NewUndirectedSimplePipeline(
		walknet.WithAreaName(cfg.Area),
		walknet.WithBounds(region.BoundingBox()),
		walknet.WithKeepParallel(*keepParallel),
		walknet.WithGeoJSON(*geoJSON),
	)
	generator := walknet.NewGenerator(
		source,
		region,
		pipeline,
		walknet.WithOutputDir(cfg.OutputDir),
		walknet.WithLogger(logger),
	)
	summary, err := generator.Run(context.Background())
	if err != nil {
		logger.Error("Error generating walk network", "err", err)
		os.Exit(1)
	}
	logger.Info("Walk network generation completed", "dir", cfg.OutputDir)
	logger.Info("Exported walkable areas", "count", summary.WalkableAreas)
	logger.Info("Exported graph", "nodes", summary.Nodes, "edges", summary.Edges)
}
