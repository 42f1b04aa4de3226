package utils

import (
	"math"
)

// earthRadiusKM is the mean earth radius used for great-circle distances.
const earthRadiusKM = 6371.0

// Distance returns the great-circle distance in kilometers between two
// coordinates, computed with the haversine formula.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)

	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// WithinRadius reports whether two coordinates are within radiusKM of each
// other.
func WithinRadius(lat1, lng1, lat2, lng2, radiusKM float64) bool {
	return Distance(lat1, lng1, lat2, lng2) <= radiusKM
}
