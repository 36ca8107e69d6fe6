package geo

import "math"

// Vertices returns the corners of a regular polygon centered on the origin,
// circumscribed by a circle of the given radius. The first vertex is at the top
// and the rest follow counter-clockwise. Sides must be at least 3 or it will panic.
func Vertices(sides int, radius float64) Points {
	if sides <= 2 {
		panic(sides)
	}
	points := make(Points, sides)
	for i := 0; i < sides; i++ {
		angle := math.Pi/2 + float64(i)/float64(sides)*2*math.Pi
		points[i] = NewPoint(radius*math.Cos(angle), radius*math.Sin(angle))
	}
	return points
}
