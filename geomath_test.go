package walknet

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

func TestSphericalLength(t *testing.T) {
	// 0.001 degree of latitude along meridian
	oneStep := 111.3195
	line := orb.LineString{{17.942, 59.403}, {17.942, 59.404}, {17.942, 59.405}}
	length := getSphericalLength(line)
	if math.Abs(length-2*oneStep) > 0.05 {
		t.Errorf("Length should be %f, but got %f", 2*oneStep, length)
	}
	if l := getSphericalLength(orb.LineString{{17.942, 59.403}}); l != 0 {
		t.Errorf("Length of single point should be 0, but got %f", l)
	}
	if l := getSphericalLength(nil); l != 0 {
		t.Errorf("Length of empty line should be 0, but got %f", l)
	}
}

func TestRegionValidate(t *testing.T) {
	correct := []Region{
		NewPointRegion(59.4031236, 17.9424221, 500),
		NewBoundRegion(59.415, 59.390, 17.960, 17.920),
	}
	for i, region := range correct {
		if err := region.Validate(); err != nil {
			t.Errorf("Region #%d should be valid, but got error: %s", i, err)
		}
	}
	wrong := []Region{
		{},
		NewPointRegion(91, 17.94, 500),
		NewPointRegion(59.4, 181, 500),
		NewPointRegion(59.4, 17.94, 0),
		NewPointRegion(59.4, 17.94, -10),
		NewPointRegion(59.4, 17.94, math.NaN()),
		NewPointRegion(59.4, 17.94, math.Inf(1)),
		NewBoundRegion(59.390, 59.415, 17.960, 17.920),
		NewBoundRegion(59.415, 59.390, 17.920, 17.960),
		NewBoundRegion(59.415, 59.415, 17.960, 17.920),
		NewBoundRegion(95, 59.390, 17.960, 17.920),
	}
	for i, region := range wrong {
		err := region.Validate()
		if err == nil {
			t.Errorf("Region #%d (%s) should be invalid", i, region)
			continue
		}
		if !errors.Is(err, ErrInvalidRegion) {
			t.Errorf("Region #%d error should be ErrInvalidRegion, but got: %s", i, err)
		}
	}
}

func TestRegionBound(t *testing.T) {
	box := NewBoundRegion(59.415, 59.390, 17.960, 17.920)
	if bb := box.BoundingBox(); bb != box.Box {
		t.Errorf("Bounding box of box region should be %+v, but got %+v", box.Box, bb)
	}
	if !box.Contains(orb.Point{17.94, 59.40}) {
		t.Errorf("Box should contain its center")
	}
	if box.Contains(orb.Point{17.94, 59.50}) {
		t.Errorf("Box should not contain point to the north of it")
	}

	point := NewPointRegion(59.4031236, 17.9424221, 500)
	bb := point.BoundingBox()
	if !(bb.North > 59.4031236 && bb.South < 59.4031236 && bb.East > 17.9424221 && bb.West < 17.9424221) {
		t.Errorf("Bounding box %+v should surround center", bb)
	}
	// Half of box height in meters should be close to distance
	halfHeight := getSphericalLength(orb.LineString{{17.9424221, 59.4031236}, {17.9424221, bb.North}})
	if math.Abs(halfHeight-500) > 1 {
		t.Errorf("Distance from center to north side should be 500m, but got %f", halfHeight)
	}
	if !point.Contains(point.Center) {
		t.Errorf("Point region should contain its center")
	}
	if point.Contains(orb.Point{17.9424221, 59.42}) {
		t.Errorf("Point region should not contain point ~1.9km away")
	}
}
