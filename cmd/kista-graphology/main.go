package main

import (
	"context"
	"flag"
	"os"

	"github.com/LdDl/walknet"
)

var (
	configFile = flag.String("config", "", "Filename of TOML configuration (optional). Region, output directory and Overpass settings are taken from it")
	out        = flag.String("out", "", "Output directory. Default is 'src/data'")
	osmFile    = flag.String("osm", "", "Filename of local *.osm / *.osm.pbf extract to use instead of Overpass API (optional)")
	retainAll  = flag.Bool("retain-all", false, "Keep every connected component instead of the largest one")
	verbose    = flag.Bool("verbose", false, "Print debug messages")
)

func main() {

	flag.Parse()

	logger := walknet.NewLogger(os.Stdout, *verbose)

	if err := walknet.LoadDotEnv(); err != nil {
		logger.Error("Can't load .env", "err", err)
		os.Exit(1)
	}
	cfg := walknet.DefaultGraphologyConfig()
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

	generator := walknet.NewGenerator(
		source,
		region,
		walknet.NewKeyedMultigraphPipeline(),
		walknet.WithOutputDir(cfg.OutputDir),
		walknet.WithLogger(logger),
	)
	summary, err := generator.Run(context.Background())
	if err != nil {
		logger.Error("Error generating walk network", "err", err)
		os.Exit(1)
	}
	for _, file := range summary.Files {
		logger.Info("Exported Graphology JSON", "path", file)
	}
	logger.Info("Walk network generation completed", "nodes", summary.Nodes, "edges", summary.Edges)
}
