package svgunit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidUnit is returned (wrapped) by Parse.
var ErrInvalidUnit = errors.New("svgunit: invalid length")

// Parse reads an SVG length such as "12", "3.5mm" or "50%".
func Parse(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unit{}, fmt.Errorf("%w: empty string", ErrInvalidUnit)
	}
	typ := None
	number := s
	if strings.HasSuffix(s, "%") {
		typ = Percent
		number = s[:len(s)-1]
	} else if len(s) > 2 {
		suffix := strings.ToLower(s[len(s)-2:])
		for t := Px; t < Percent; t++ {
			if suffixes[t] == suffix {
				typ = t
				number = s[:len(s)-2]
				break
			}
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(number), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Unit{}, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
	return Unit{Value: v, Type: typ}, nil
}

// MustParse is like Parse but panics on invalid input.
// It is meant for static values.
func MustParse(s string) Unit {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}
