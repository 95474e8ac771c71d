package walknet

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// getSphericalLength returns length for given line (meters)
func getSphericalLength(line orb.LineString) float64 {
	totalLength := 0.0
	if len(line) < 2 {
		return totalLength
	}
	for i := 1; i < len(line); i++ {
		totalLength += geo.DistanceHaversine(line[i-1], line[i])
	}
	return totalLength
}
