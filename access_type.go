package walknet

// AccessType is an OSM tag key which takes part in deciding whether way is walkable
type AccessType uint16

const (
	ACCESS_HIGHWAY = AccessType(iota + 1)
	ACCESS_OSM_ACCESS
	ACCESS_SERVICE
	ACCESS_FOOT
	ACCESS_AREA
	ACCESS_UNDEFINED = AccessType(0)
)

func (iotaIdx AccessType) String() string {
	return [...]string{"undefined", "highway", "access", "service", "foot", "area"}[iotaIdx]
}
