package polygon

type polygonRegular struct {
	*basePolygon
}

func NewRegularPolygon(sides int, length float64) (Polygon, error) {
	base, err := newBasePolygon(REGULAR_TYPE, sides, length)
	if err != nil {
		return nil, err
	}
	return validate(polygonRegular{
		basePolygon: base,
	})
}
