package polygon

type polygonSquare struct {
	*basePolygon
}

func NewSquare(length float64) (Polygon, error) {
	base, err := newBasePolygon(SQUARE_TYPE, 4, length)
	if err != nil {
		return nil, err
	}
	return validate(polygonSquare{
		basePolygon: base,
	})
}

// Area skips the tangent so that integer lengths give exact results.
func (p polygonSquare) Area() float64 {
	return p.length * p.length
}
