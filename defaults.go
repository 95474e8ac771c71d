package walknet

import (
	"github.com/paulmach/osm"
)

// tagDefaults maps tag key to value substituted when the tag is absent. Nil value stands for JSON null
type tagDefaults map[string]*string

func strPtr(s string) *string {
	return &s
}

var (
	nodeDefaults = tagDefaults{
		"highway": strPtr("intersection"),
		"name":    strPtr(""),
	}

	graphologyEdgeDefaults = tagDefaults{
		"highway": strPtr("path"),
		"length":  strPtr("0"),
		"surface": strPtr(""),
		"foot":    strPtr("yes"),
	}

	networkEdgeDefaults = tagDefaults{
		"highway": strPtr("path"),
		"name":    strPtr(""),
		"length":  strPtr("0"),
		"width":   nil,
		"surface": nil,
		"lit":     nil,
		"foot":    strPtr("yes"),
	}
)

// lookup returns tag value or table default. Keys missing from table default to null
func (td tagDefaults) lookup(tags osm.Tags, key string) *string {
	if value, ok := findTag(tags, key); ok {
		return &value
	}
	if def, ok := td[key]; ok && def != nil {
		value := *def
		return &value
	}
	return nil
}

// value is lookup with null flattened to empty string
func (td tagDefaults) value(tags osm.Tags, key string) string {
	if v := td.lookup(tags, key); v != nil {
		return *v
	}
	return ""
}
