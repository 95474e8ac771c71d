package walknet

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// BoundingBox is a north/south/east/west box in decimal degrees
type BoundingBox struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Bound returns box as orb.Bound (X is longitude, Y is latitude)
func (bb BoundingBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{bb.West, bb.South},
		Max: orb.Point{bb.East, bb.North},
	}
}

func boundingBoxFromBound(bound orb.Bound) BoundingBox {
	return BoundingBox{
		North: bound.Max.Lat(),
		South: bound.Min.Lat(),
		East:  bound.Max.Lon(),
		West:  bound.Min.Lon(),
	}
}

type RegionKind uint16

const (
	REGION_POINT = RegionKind(iota + 1)
	REGION_BOX
	REGION_UNDEFINED = RegionKind(0)
)

func (iotaIdx RegionKind) String() string {
	return [...]string{"undefined", "point", "box"}[iotaIdx]
}

// Region describes the area to download: either center point plus radius or explicit bounding box
type Region struct {
	Kind RegionKind
	// Center of point region. X is longitude, Y is latitude
	Center orb.Point
	// Distance from center in meters
	Distance float64
	Box      BoundingBox
}

// NewPointRegion returns region covering 'distance' meters around given point
func NewPointRegion(lat, lng, distance float64) Region {
	return Region{
		Kind:     REGION_POINT,
		Center:   orb.Point{lng, lat},
		Distance: distance,
	}
}

// NewBoundRegion returns region for explicit bounding box
func NewBoundRegion(north, south, east, west float64) Region {
	return Region{
		Kind: REGION_BOX,
		Box: BoundingBox{
			North: north,
			South: south,
			East:  east,
			West:  west,
		},
	}
}

// Validate checks that region could be used for downloading
func (r Region) Validate() error {
	switch r.Kind {
	case REGION_POINT:
		if !validLat(r.Center.Lat()) || !validLon(r.Center.Lon()) {
			return errors.Wrapf(ErrInvalidRegion, "center (%f, %f) is out of range", r.Center.Lat(), r.Center.Lon())
		}
		if !(r.Distance > 0) || math.IsInf(r.Distance, 0) {
			return errors.Wrapf(ErrInvalidRegion, "distance should be positive, got %f", r.Distance)
		}
	case REGION_BOX:
		bb := r.Box
		if !validLat(bb.North) || !validLat(bb.South) || !validLon(bb.East) || !validLon(bb.West) {
			return errors.Wrapf(ErrInvalidRegion, "box %+v is out of range", bb)
		}
		if bb.North <= bb.South {
			return errors.Wrapf(ErrInvalidRegion, "north (%f) should be greater than south (%f)", bb.North, bb.South)
		}
		if bb.East <= bb.West {
			return errors.Wrapf(ErrInvalidRegion, "east (%f) should be greater than west (%f)", bb.East, bb.West)
		}
	default:
		return errors.Wrap(ErrInvalidRegion, "region kind is not set")
	}
	return nil
}

// Bound returns region extent. For point regions it is the box around center
func (r Region) Bound() orb.Bound {
	if r.Kind == REGION_POINT {
		return geo.NewBoundAroundPoint(r.Center, r.Distance)
	}
	return r.Box.Bound()
}

// BoundingBox returns region extent in north/south/east/west form
func (r Region) BoundingBox() BoundingBox {
	if r.Kind == REGION_BOX {
		return r.Box
	}
	return boundingBoxFromBound(r.Bound())
}

// Contains reports whether point (lon, lat) lies within region extent
func (r Region) Contains(pt orb.Point) bool {
	return r.Bound().Contains(pt)
}

func (r Region) String() string {
	switch r.Kind {
	case REGION_POINT:
		return fmt.Sprintf("point (%f, %f) dist %.0fm", r.Center.Lat(), r.Center.Lon(), r.Distance)
	case REGION_BOX:
		return fmt.Sprintf("box N %f S %f E %f W %f", r.Box.North, r.Box.South, r.Box.East, r.Box.West)
	}
	return r.Kind.String()
}

func validLat(v float64) bool {
	return v >= -90 && v <= 90
}

func validLon(v float64) bool {
	return v >= -180 && v <= 180
}
