package polygon

import (
	"errors"
	"fmt"
)

// ErrInvalidShapeParameter is matched by every ParameterError.
var ErrInvalidShapeParameter = errors.New("invalid shape parameter")

type ParameterError struct {
	Type   string  `json:"type"`
	Param  string  `json:"param"`
	Value  float64 `json:"value"`
	Reason string  `json:"reason"`
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s %s %v %s", ErrInvalidShapeParameter, e.Type, e.Param, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidShapeParameter
}
