// Package svgattr implements the attribute store backing every
// element: a mapping from attribute name to a tagged value, with typed
// accessors which coerce the stored value or fail explicitly.
//
// Inheritance is not built in the store: see Inherit.
package svgattr

import (
	"strconv"
	"strings"

	"github.com/benoitkugler/svgdom/svgdraw"
	"github.com/benoitkugler/svgdom/svgunit"
)

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindUnit
	KindNumbers
	KindURI
	KindPaint
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindUnit:
		return "unit"
	case KindNumbers:
		return "numbers"
	case KindURI:
		return "uri"
	case KindPaint:
		return "paint"
	default:
		return "<unknown Kind>"
	}
}

// Value is one of String, Number, UnitValue, Numbers, URI or PaintValue.
type Value interface {
	Kind() Kind
	// String returns the attribute text of the value.
	String() string
	// clone returns a value not sharing memory with the receiver.
	clone() Value
}

// String is raw attribute text, not yet interpreted.
type String string

// Number is a plain scalar (opacity, miter limit...).
type Number float64

// UnitValue is a length with its unit.
type UnitValue svgunit.Unit

// Numbers is a list of scalars, such as a dash array.
type Numbers []float64

// URI is a reference to some content, either external
// or inline (see the datauri package).
type URI string

// PaintValue is a fill or stroke paint.
// A nil Paint means "none".
type PaintValue struct {
	Paint svgdraw.Paint
}

func (String) Kind() Kind     { return KindString }
func (Number) Kind() Kind     { return KindNumber }
func (UnitValue) Kind() Kind  { return KindUnit }
func (Numbers) Kind() Kind    { return KindNumbers }
func (URI) Kind() Kind        { return KindURI }
func (PaintValue) Kind() Kind { return KindPaint }

func (s String) String() string    { return string(s) }
func (n Number) String() string    { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (u UnitValue) String() string { return svgunit.Unit(u).String() }
func (u URI) String() string       { return string(u) }

func (ns Numbers) String() string {
	chunks := make([]string, len(ns))
	for i, n := range ns {
		chunks[i] = strconv.FormatFloat(n, 'g', -1, 64)
	}
	return strings.Join(chunks, " ")
}

func (p PaintValue) String() string { return FormatPaint(p.Paint) }

func (s String) clone() Value    { return s }
func (n Number) clone() Value    { return n }
func (u UnitValue) clone() Value { return u }
func (u URI) clone() Value       { return u }

func (ns Numbers) clone() Value {
	if ns == nil {
		return Numbers(nil)
	}
	return append(Numbers(nil), ns...)
}

func (p PaintValue) clone() Value {
	if p.Paint == nil {
		return p
	}
	return PaintValue{Paint: p.Paint.Copy()}
}
