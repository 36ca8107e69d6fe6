package polygon

import (
	"fmt"
	"math"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/polygons/lib/geo"
)

const (
	REGULAR_TYPE  = "RegularPolygon"
	SQUARE_TYPE   = "Square"
	TRIANGLE_TYPE = "Triangle"

	MIN_SIDES = 3
)

type Polygon interface {
	Is(polygonType string) bool
	GetType() string

	Sides() int
	Length() float64

	Perimeter() float64
	Apothem() float64
	Circumradius() float64
	// InteriorAngle is in radians
	InteriorAngle() float64

	// Area defaults to apothem * perimeter / 2. Variants with an exact closed form override it.
	Area() float64
}

type basePolygon struct {
	Type   string
	sides  int
	length float64
}

func (p basePolygon) Is(polygonType string) bool {
	return p.Type == polygonType
}

func (p basePolygon) GetType() string {
	return p.Type
}

func (p basePolygon) Sides() int {
	return p.sides
}

func (p basePolygon) Length() float64 {
	return p.length
}

func (p basePolygon) Perimeter() float64 {
	return float64(p.sides) * p.length
}

func (p basePolygon) Apothem() float64 {
	return p.length / (2 * math.Tan(math.Pi/float64(p.sides)))
}

func (p basePolygon) Circumradius() float64 {
	return p.length / (2 * math.Sin(math.Pi/float64(p.sides)))
}

func (p basePolygon) InteriorAngle() float64 {
	return float64(p.sides-2) * math.Pi / float64(p.sides)
}

func (p basePolygon) Area() float64 {
	return p.Apothem() * p.Perimeter() / 2
}

func newBasePolygon(polygonType string, sides int, length float64) (*basePolygon, error) {
	if sides < MIN_SIDES {
		return nil, &ParameterError{
			Type:   polygonType,
			Param:  "sides",
			Value:  float64(sides),
			Reason: fmt.Sprintf("must be at least %d", MIN_SIDES),
		}
	}
	if !geo.IsFinite(length) {
		return nil, &ParameterError{Type: polygonType, Param: "length", Value: length, Reason: "must be finite"}
	}
	if length <= 0 {
		return nil, &ParameterError{Type: polygonType, Param: "length", Value: length, Reason: "must be positive"}
	}
	return &basePolygon{
		Type:   polygonType,
		sides:  sides,
		length: length,
	}, nil
}

// validate rejects polygons whose derived values overflow or vanish.
func validate(p Polygon) (Polygon, error) {
	derived := []struct {
		name string
		v    float64
	}{
		{"perimeter", p.Perimeter()},
		{"apothem", p.Apothem()},
		{"area", p.Area()},
	}
	for _, d := range derived {
		if !geo.IsFinite(d.v) || d.v <= 0 {
			return nil, &ParameterError{
				Type:   p.GetType(),
				Param:  d.name,
				Value:  d.v,
				Reason: fmt.Sprintf("is not a positive finite number for sides=%d length=%v", p.Sides(), p.Length()),
			}
		}
	}
	return p, nil
}

// NewPolygon builds the polygon registered under polygonType.
// An empty type picks the most specific variant for sides.
func NewPolygon(polygonType string, sides int, length float64) (_ Polygon, err error) {
	defer xdefer.Errorf(&err, "failed to create %s", Describe(polygonType, sides, length))

	switch polygonType {
	case "":
		return ForSides(sides, length)
	case REGULAR_TYPE:
		return NewRegularPolygon(sides, length)
	case SQUARE_TYPE:
		if sides != 4 {
			return nil, &ParameterError{Type: polygonType, Param: "sides", Value: float64(sides), Reason: "must be 4"}
		}
		return NewSquare(length)
	case TRIANGLE_TYPE:
		if sides != 3 {
			return nil, &ParameterError{Type: polygonType, Param: "sides", Value: float64(sides), Reason: "must be 3"}
		}
		return NewTriangle(length)
	default:
		return nil, fmt.Errorf("unknown polygon type %q", polygonType)
	}
}

func ForSides(sides int, length float64) (Polygon, error) {
	switch sides {
	case 3:
		return NewTriangle(length)
	case 4:
		return NewSquare(length)
	default:
		return NewRegularPolygon(sides, length)
	}
}

func Describe(polygonType string, sides int, length float64) string {
	if polygonType == "" {
		polygonType = REGULAR_TYPE
	}
	return fmt.Sprintf("%s(sides=%d, length=%v)", polygonType, sides, length)
}

func String(p Polygon) string {
	return Describe(p.GetType(), p.Sides(), p.Length())
}

// Vertices places p centered on the origin with its first corner at the top.
func Vertices(p Polygon) geo.Points {
	return geo.Vertices(p.Sides(), p.Circumradius())
}
