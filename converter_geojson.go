package walknet

import (
	geojson "github.com/paulmach/go.geojson"
)

// PrepareGeoJSONAreas returns walkable areas as FeatureCollection of LineString features.
// Feature ID is the edge ID, properties are area type plus edge properties
func PrepareGeoJSONAreas(areas []WalkableArea) *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()
	for _, area := range areas {
		pts2d := make([][]float64, len(area.Coordinates))
		for i, pt := range area.Coordinates {
			pts2d[i] = []float64{pt.Lng, pt.Lat}
		}
		feature := geojson.NewLineStringFeature(pts2d)
		feature.ID = area.ID
		feature.SetProperty("type", area.Type.String())
		feature.SetProperty("highway", area.Properties.Highway)
		feature.SetProperty("name", area.Properties.Name)
		feature.SetProperty("length", area.Properties.Length)
		feature.SetProperty("width", area.Properties.Width)
		feature.SetProperty("surface", area.Properties.Surface)
		feature.SetProperty("lit", area.Properties.Lit)
		feature.SetProperty("foot", area.Properties.Foot)
		collection.AddFeature(feature)
	}
	return collection
}
