package walknet

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variables overriding configuration
const (
	ENV_OVERPASS_URL = "WALKNET_OVERPASS_URL"
	ENV_OUTPUT_DIR   = "WALKNET_OUTPUT_DIR"
)

// RegionConfig either lat/lng/dist or north/south/east/west has to be provided
type RegionConfig struct {
	Lat   *float64 `toml:"lat"`
	Lng   *float64 `toml:"lng"`
	Dist  *float64 `toml:"dist"`
	North *float64 `toml:"north"`
	South *float64 `toml:"south"`
	East  *float64 `toml:"east"`
	West  *float64 `toml:"west"`
}

type OverpassConfig struct {
	URL string `toml:"url"`
	// Duration string like "3m" or "180s"
	Timeout string `toml:"timeout"`
}

// Config is a run configuration. Zero values are filled from per-command defaults
type Config struct {
	Area      string         `toml:"area"`
	OutputDir string         `toml:"output_dir"`
	Region    RegionConfig   `toml:"region"`
	Overpass  OverpassConfig `toml:"overpass"`
}

func float64Ptr(v float64) *float64 {
	return &v
}

// DefaultGraphologyConfig 500 meters around Kista center
func DefaultGraphologyConfig() Config {
	return Config{
		Area:      DEFAULT_AREA_NAME,
		OutputDir: DEFAULT_OUTPUT_DIR,
		Region: RegionConfig{
			Lat:  float64Ptr(59.4031236),
			Lng:  float64Ptr(17.9424221),
			Dist: float64Ptr(500),
		},
		Overpass: OverpassConfig{
			URL:     DEFAULT_OVERPASS_URL,
			Timeout: DEFAULT_OVERPASS_TIMEOUT.String(),
		},
	}
}

// DefaultNetworkConfig Kista bounding box
func DefaultNetworkConfig() Config {
	return Config{
		Area:      DEFAULT_AREA_NAME,
		OutputDir: DEFAULT_OUTPUT_DIR,
		Region: RegionConfig{
			North: float64Ptr(59.415),
			South: float64Ptr(59.390),
			East:  float64Ptr(17.960),
			West:  float64Ptr(17.920),
		},
		Overpass: OverpassConfig{
			URL:     DEFAULT_OVERPASS_URL,
			Timeout: DEFAULT_OVERPASS_TIMEOUT.String(),
		},
	}
}

// LoadConfig reads TOML file on top of base. Region from file replaces base region as a whole
func LoadConfig(filename string, base Config) (Config, error) {
	fileCfg := Config{}
	if _, err := toml.DecodeFile(filename, &fileCfg); err != nil {
		return base, errors.Wrapf(err, "Can't decode config '%s'", filename)
	}
	cfg := base
	if fileCfg.Area != "" {
		cfg.Area = fileCfg.Area
	}
	if fileCfg.OutputDir != "" {
		cfg.OutputDir = fileCfg.OutputDir
	}
	if !fileCfg.Region.isEmpty() {
		cfg.Region = fileCfg.Region
	}
	if fileCfg.Overpass.URL != "" {
		cfg.Overpass.URL = fileCfg.Overpass.URL
	}
	if fileCfg.Overpass.Timeout != "" {
		cfg.Overpass.Timeout = fileCfg.Overpass.Timeout
	}
	return cfg, nil
}

// LoadDotEnv loads variables from given .env files (default: ./.env). Missing files are ignored
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	existing := make([]string, 0, len(filenames))
	for _, filename := range filenames {
		if _, err := os.Stat(filename); err == nil {
			existing = append(existing, filename)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ApplyEnv returns copy of configuration with environment overrides applied
func (cfg Config) ApplyEnv() Config {
	if v := os.Getenv(ENV_OVERPASS_URL); v != "" {
		cfg.Overpass.URL = v
	}
	if v := os.Getenv(ENV_OUTPUT_DIR); v != "" {
		cfg.OutputDir = v
	}
	return cfg
}

func (cfg RegionConfig) isEmpty() bool {
	return cfg.Lat == nil && cfg.Lng == nil && cfg.Dist == nil &&
		cfg.North == nil && cfg.South == nil && cfg.East == nil && cfg.West == nil
}

func (cfg RegionConfig) isPoint() bool {
	return cfg.Lat != nil && cfg.Lng != nil && cfg.Dist != nil
}

func (cfg RegionConfig) isBox() bool {
	return cfg.North != nil && cfg.South != nil && cfg.East != nil && cfg.West != nil
}

// Region converts configuration to validated Region
func (cfg RegionConfig) Region() (Region, error) {
	var region Region
	switch {
	case cfg.isPoint() && cfg.isBox():
		return Region{}, errors.Wrap(ErrInvalidRegion, "both point and box are configured")
	case cfg.isPoint():
		region = NewPointRegion(*cfg.Lat, *cfg.Lng, *cfg.Dist)
	case cfg.isBox():
		region = NewBoundRegion(*cfg.North, *cfg.South, *cfg.East, *cfg.West)
	default:
		return Region{}, errors.Wrap(ErrInvalidRegion, "either lat/lng/dist or north/south/east/west should be configured")
	}
	if err := region.Validate(); err != nil {
		return Region{}, err
	}
	return region, nil
}

// TimeoutDuration parses Overpass timeout. Empty value gives default
func (cfg OverpassConfig) TimeoutDuration() (time.Duration, error) {
	if cfg.Timeout == "" {
		return DEFAULT_OVERPASS_TIMEOUT, nil
	}
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return 0, errors.Wrapf(err, "Can't parse overpass timeout '%s'", cfg.Timeout)
	}
	if timeout <= 0 {
		return 0, errors.Errorf("Overpass timeout should be positive, got '%s'", cfg.Timeout)
	}
	return timeout, nil
}

// Source returns FileSource when osmFile is set, otherwise Overpass client configured by cfg
func (cfg Config) Source(osmFile string, retainAll bool, logger *log.Logger) (NetworkSource, error) {
	if osmFile != "" {
		source := NewFileSource(osmFile)
		source.RetainAll = retainAll
		source.Logger = logger
		return source, nil
	}
	timeout, err := cfg.Overpass.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	source := NewOverpassSource(cfg.Overpass.URL)
	source.Timeout = timeout
	source.RetainAll = retainAll
	source.Logger = logger
	return source, nil
}
