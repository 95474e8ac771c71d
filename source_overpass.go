package walknet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

const (
	DEFAULT_OVERPASS_URL     = "https://overpass-api.de/api/interpreter"
	DEFAULT_OVERPASS_TIMEOUT = 180 * time.Second
	overpassUserAgent        = "walknet (github.com/LdDl/walknet)"
)

// walkWayFilter is built from walk access rules, so Overpass ships exactly the ways local extracts would admit
var walkWayFilter = overpassWayFilter(AGENT_WALK)

// OverpassSource downloads walk network from Overpass API
type OverpassSource struct {
	URL       string
	Client    *http.Client
	Timeout   time.Duration
	RetainAll bool
	Logger    *log.Logger
}

func NewOverpassSource(endpoint string) *OverpassSource {
	if endpoint == "" {
		endpoint = DEFAULT_OVERPASS_URL
	}
	return &OverpassSource{
		URL:     endpoint,
		Client:  http.DefaultClient,
		Timeout: DEFAULT_OVERPASS_TIMEOUT,
	}
}

// OverpassQuery returns Overpass QL query for walkable ways in region plus their nodes
func OverpassQuery(region Region, timeout time.Duration) string {
	bb := region.BoundingBox()
	return fmt.Sprintf("[out:xml][timeout:%d];(way%s(%f,%f,%f,%f););(._;>;);out;",
		int(timeout.Seconds()), walkWayFilter, bb.South, bb.West, bb.North, bb.East)
}

func (source *OverpassSource) FetchGraph(ctx context.Context, region Region) (*RawGraph, error) {
	if err := region.Validate(); err != nil {
		return nil, err
	}
	logger := source.Logger
	if logger == nil {
		logger = discardLogger()
	}
	client := source.Client
	if client == nil {
		client = http.DefaultClient
	}
	timeout := source.Timeout
	if timeout <= 0 {
		timeout = DEFAULT_OVERPASS_TIMEOUT
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	query := OverpassQuery(region, timeout)
	logger.Debug("Requesting Overpass API", "url", source.URL, "region", region.String())
	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, source.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "Can't prepare request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", overpassUserAgent)

	st := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "Overpass request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Wrapf(ErrSourceUnavailable, "Overpass responded with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	scanner := osmxml.New(ctx, resp.Body)
	defer scanner.Close()
	data, err := readOSM(scanner, logger)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "Can't decode Overpass response: %v", err)
	}
	done(logger, st, "Overpass data downloaded", "nodes", len(data.nodes), "ways", len(data.ways))
	return data.prepareWalkGraph(region, source.RetainAll, logger), nil
}
