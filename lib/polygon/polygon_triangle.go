package polygon

import "math"

type polygonTriangle struct {
	*basePolygon
}

// NewTriangle returns an equilateral triangle.
func NewTriangle(length float64) (Polygon, error) {
	base, err := newBasePolygon(TRIANGLE_TYPE, 3, length)
	if err != nil {
		return nil, err
	}
	return validate(polygonTriangle{
		basePolygon: base,
	})
}

func (p polygonTriangle) Area() float64 {
	return math.Sqrt(3) / 4 * p.length * p.length
}
