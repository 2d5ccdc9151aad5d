package entity

// KmPerDegree is the fixed degrees-to-kilometres factor of the bounding-box search.
const KmPerDegree = 111.0

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitud  float64
	Longitud float64
}

// GeocodeResult is the outcome of a forward lookup. Found is false for a normal miss.
type GeocodeResult struct {
	Found bool
	Point GeoPoint
}

// ReverseGeocodeResult is the outcome of a reverse lookup.
type ReverseGeocodeResult struct {
	Found     bool
	Direccion string
}
