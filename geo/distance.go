package geo

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between two
// points using the haversine formula. Inputs are assumed valid; use
// IsValidCoordinate before calling when the source data is untrusted.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// FormatDistance renders a distance for display. Nil, NaN and anything
// past 999km all read as "Unknown"; below 1km it switches to meters.
func FormatDistance(km *float64) string {
	if km == nil || math.IsNaN(*km) || *km >= 999 {
		return "Unknown"
	}
	if *km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(*km*1000)))
	}
	return fmt.Sprintf("%.1fkm", *km)
}

// IsValidCoordinate reports whether lat/lng form a usable position.
// The exact (0,0) point is rejected since it is the usual placeholder
// for missing data.
func IsValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return false
	}
	return !(lat == 0 && lng == 0)
}
