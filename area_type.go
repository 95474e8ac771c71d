package walknet

import (
	"fmt"
)

// AreaType is a display label of walkable area
type AreaType uint16

const (
	AREA_PATH = AreaType(iota + 1)
	AREA_ROAD
	AREA_SIDEWALK
	AREA_PLAZA
	AREA_UNDEFINED = AreaType(0)
)

func (iotaIdx AreaType) String() string {
	return [...]string{"undefined", "path", "road", "sidewalk", "plaza"}[iotaIdx]
}

var areaTypes = map[string]AreaType{
	"path":     AREA_PATH,
	"road":     AREA_ROAD,
	"sidewalk": AREA_SIDEWALK,
	"plaza":    AREA_PLAZA,
}

// MarshalText implements encoding.TextMarshaler
func (iotaIdx AreaType) MarshalText() ([]byte, error) {
	if iotaIdx == AREA_UNDEFINED || int(iotaIdx) >= len(areaTypes)+1 {
		return nil, fmt.Errorf("Can't marshal area type %d", iotaIdx)
	}
	return []byte(iotaIdx.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (iotaIdx *AreaType) UnmarshalText(text []byte) error {
	found, ok := areaTypes[string(text)]
	if !ok {
		return fmt.Errorf("Unknown area type '%s'", text)
	}
	*iotaIdx = found
	return nil
}
