package models

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// Lng returns the longitude component, or 0 if coordinates are malformed.
func (g GeoPoint) Lng() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[0]
}

// Lat returns the latitude component, or 0 if coordinates are malformed.
func (g GeoPoint) Lat() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[1]
}

// Valid reports whether the point carries a 2-element coordinate pair
// within WGS84 ranges.
func (g GeoPoint) Valid() bool {
	if len(g.Coordinates) != 2 {
		return false
	}
	lng, lat := g.Coordinates[0], g.Coordinates[1]
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
