package walknet

import (
	"github.com/paulmach/osm"
)

var (
	// Major roads which count as sidewalks once `sidewalk` tag is set
	sidewalkCarriers = map[HighwayType]struct{}{
		HIGHWAY_PRIMARY:   {},
		HIGHWAY_SECONDARY: {},
		HIGHWAY_TERTIARY:  {},
	}
)

// ClassifyArea maps edge tags to walkable area label. First matching rule wins:
//
//	highway=footway                                          → path
//	highway=pedestrian                                       → path
//	highway=living_street                                    → road
//	highway=residential + non-empty sidewalk                 → sidewalk
//	highway=primary|secondary|tertiary + non-empty sidewalk  → sidewalk
//	leisure=park                                             → plaza
//	anything else                                            → path
func ClassifyArea(tags osm.Tags) AreaType {
	highway := getHighwayType(tags.Find("highway"))
	hasSidewalk := hasValue(tags, "sidewalk")
	switch {
	case highway == HIGHWAY_FOOTWAY:
		return AREA_PATH
	case highway == HIGHWAY_PEDESTRIAN:
		return AREA_PATH
	case highway == HIGHWAY_LIVING_STREET:
		return AREA_ROAD
	case highway == HIGHWAY_RESIDENTIAL && hasSidewalk:
		return AREA_SIDEWALK
	case isSidewalkCarrier(highway) && hasSidewalk:
		return AREA_SIDEWALK
	case tags.Find("leisure") == "park":
		return AREA_PLAZA
	}
	return AREA_PATH
}

// hasValue reports whether tag is present with non-empty value. Any value counts, "no" included
func hasValue(tags osm.Tags, key string) bool {
	value, ok := findTag(tags, key)
	return ok && value != ""
}

func isSidewalkCarrier(highway HighwayType) bool {
	_, ok := sidewalkCarriers[highway]
	return ok
}
