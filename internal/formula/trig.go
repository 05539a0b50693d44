package formula

import "math"

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func sinDeg(deg float64) float64 {
	return math.Sin(radians(deg))
}
