package walknet

// HighwayType is a `highway` class which takes part in area classification
type HighwayType uint16

const (
	HIGHWAY_PRIMARY = HighwayType(iota + 1)
	HIGHWAY_SECONDARY
	HIGHWAY_TERTIARY
	HIGHWAY_RESIDENTIAL
	HIGHWAY_LIVING_STREET
	HIGHWAY_FOOTWAY
	HIGHWAY_PEDESTRIAN
	HIGHWAY_UNDEFINED = HighwayType(0)
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"undefined", "primary", "secondary", "tertiary", "residential", "living_street", "footway", "pedestrian"}[iotaIdx]
}

func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return HIGHWAY_UNDEFINED
}

var (
	highwaysTypes = map[string]HighwayType{
		HIGHWAY_PRIMARY.String():       HIGHWAY_PRIMARY,
		HIGHWAY_SECONDARY.String():     HIGHWAY_SECONDARY,
		HIGHWAY_TERTIARY.String():      HIGHWAY_TERTIARY,
		HIGHWAY_RESIDENTIAL.String():   HIGHWAY_RESIDENTIAL,
		HIGHWAY_LIVING_STREET.String(): HIGHWAY_LIVING_STREET,
		HIGHWAY_FOOTWAY.String():       HIGHWAY_FOOTWAY,
		HIGHWAY_PEDESTRIAN.String():    HIGHWAY_PEDESTRIAN,
	}
)
