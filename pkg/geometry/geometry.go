package geometry

import (
	"math"
)

// EarthRadiusM is the mean earth radius in metres.
const EarthRadiusM = 6371008.8

// --- Geometry Helpers ---

func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// DistM returns the great circle distance in metres between two points.
func DistM(lat1, lon1, lat2, lon2 float64) float64 {
	r1, r2 := ToRadians(lat1), ToRadians(lat2)

	dLat := ToRadians(lat2 - lat1)
	dLon := ToRadians(lon2 - lon1)

	// --- handle dateline crossing ---
	for dLon > math.Pi {
		dLon -= 2 * math.Pi
	}
	for dLon < -math.Pi {
		dLon += 2 * math.Pi
	}

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(r1)*math.Cos(r2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return EarthRadiusM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Destination returns the point reached by travelling distM metres from
// (lat, lon) on the initial bearing bearingDeg (clockwise from north).
func Destination(lat, lon, bearingDeg, distM float64) (float64, float64) {
	phi1 := ToRadians(lat)
	lambda1 := ToRadians(lon)
	theta := ToRadians(bearingDeg)
	delta := distM / EarthRadiusM

	phi2 := math.Asin(math.Sin(phi1)*math.Cos(delta) +
		math.Cos(phi1)*math.Sin(delta)*math.Cos(theta))
	lambda2 := lambda1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(phi1),
		math.Cos(delta)-math.Sin(phi1)*math.Sin(phi2))

	lon2 := ToDegrees(lambda2)
	// normalise to [-180, 180)
	lon2 = math.Mod(lon2+540, 360) - 180

	return ToDegrees(phi2), lon2
}

// CircleRing approximates a circle of radiusM metres around (lat, lon) with
// the given number of segments. Points are [lat, lon] pairs and the ring is
// closed, so the result holds segments+1 points.
//
// A zero or negative radius collapses every vertex onto the centre.
func CircleRing(lat, lon, radiusM float64, segments int) [][2]float64 {
	if segments < 3 {
		segments = 3
	}
	if radiusM < 0 {
		radiusM = 0
	}

	ring := make([][2]float64, 0, segments+1)
	step := 360.0 / float64(segments)
	for i := 0; i < segments; i++ {
		pLat, pLon := Destination(lat, lon, float64(i)*step, radiusM)
		ring = append(ring, [2]float64{pLat, pLon})
	}
	ring = append(ring, ring[0])

	return ring
}
