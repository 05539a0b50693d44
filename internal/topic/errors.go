package topic

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/physcalc/internal/formula"
)

var ErrUnknownTopic = errors.New("topic: unknown topic")

// RangeError reports an input outside its parameter's bounds.
type RangeError struct {
	Topic string
	Param Param
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s = %g is outside %s", e.Topic, e.Param.Name, e.Value, interval(e.Param))
}

func (e *RangeError) Unwrap() error {
	return formula.ErrInvalidInput
}

func interval(p Param) string {
	open := "["
	if p.MinOpen {
		open = "("
	}
	lo, hi := "-inf", "+inf"
	if !math.IsInf(p.Min, -1) {
		lo = strconv.FormatFloat(p.Min, 'g', -1, 64)
	}
	if !math.IsInf(p.Max, 1) {
		hi = strconv.FormatFloat(p.Max, 'g', -1, 64)
	}
	closeBracket := "]"
	if math.IsInf(p.Max, 1) {
		closeBracket = ")"
	}
	return open + lo + ", " + hi + closeBracket
}
