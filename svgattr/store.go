package svgattr

import (
	"sort"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgdom/svgdraw"
	"github.com/benoitkugler/svgdom/svgunit"
)

// Store maps attribute names to values.
// The zero value is an empty, ready to use store.
// Writes are last-write-wins.
type Store struct {
	values map[string]Value
}

// NewStore returns a store initialized with `attrs`,
// which are stored as String values.
func NewStore(attrs map[string]string) *Store {
	s := &Store{values: make(map[string]Value, len(attrs))}
	for k, v := range attrs {
		s.values[k] = String(v)
	}
	return s
}

// Set stores `v` under `key`, overwriting any previous value.
// A nil value deletes the key.
func (s *Store) Set(key string, v Value) {
	if v == nil {
		s.Delete(key)
		return
	}
	if s.values == nil {
		s.values = make(map[string]Value)
	}
	s.values[key] = v
}

// Get returns the raw stored value.
func (s *Store) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Require is like Get, but fails with ErrUnset when the key is absent.
func (s *Store) Require(key string) (Value, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, unsetError(key)
	}
	return v, nil
}

func (s *Store) Delete(key string) { delete(s.values, key) }

func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Keys returns the sorted attribute names.
func (s *Store) Keys() []string {
	out := make([]string, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	out := &Store{values: make(map[string]Value, len(s.values))}
	for k, v := range s.values {
		out.values[k] = v.clone()
	}
	return out
}

// Equal reports whether both stores hold the same attributes,
// compared by kind and text.
func (s *Store) Equal(other *Store) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s.Len() == 0 {
		return true // a nil store is empty
	}
	for k, v := range s.values {
		o, ok := other.values[k]
		if !ok || o.Kind() != v.Kind() || o.String() != v.String() {
			return false
		}
	}
	return true
}

// Unit returns the length stored under `key`, or the zero Unit
// if it is absent.
// Numbers are read as unitless lengths and strings are parsed.
func (s *Store) Unit(key string) (svgunit.Unit, error) {
	v, ok := s.values[key]
	if !ok {
		return svgunit.Unit{}, nil
	}
	switch v := v.(type) {
	case UnitValue:
		return svgunit.Unit(v), nil
	case Number:
		return svgunit.New(float64(v), svgunit.None), nil
	case String:
		u, err := svgunit.Parse(string(v))
		if err != nil {
			return svgunit.Unit{}, &TypeError{Key: key, Want: KindUnit, Got: KindString, Err: err}
		}
		return u, nil
	default:
		return svgunit.Unit{}, &TypeError{Key: key, Want: KindUnit, Got: v.Kind()}
	}
}

// Number returns the scalar stored under `key`, or 0.
// Lengths are only accepted when they carry no context dependent unit.
func (s *Store) Number(key string) (float64, error) {
	v, ok := s.values[key]
	if !ok {
		return 0, nil
	}
	switch v := v.(type) {
	case Number:
		return float64(v), nil
	case UnitValue:
		if v.Type == svgunit.None || v.Type == svgunit.Px {
			return v.Value, nil
		}
		return 0, &TypeError{Key: key, Want: KindNumber, Got: KindUnit}
	case String:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			return 0, &TypeError{Key: key, Want: KindNumber, Got: KindString, Err: err}
		}
		return f, nil
	default:
		return 0, &TypeError{Key: key, Want: KindNumber, Got: v.Kind()}
	}
}

// Str returns the text stored under `key`, or "".
// Only String and URI values are accepted.
func (s *Store) Str(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", nil
	}
	switch v := v.(type) {
	case String:
		return string(v), nil
	case URI:
		return string(v), nil
	default:
		return "", &TypeError{Key: key, Want: KindString, Got: v.Kind()}
	}
}

// Numbers returns the list stored under `key`, or nil.
// Strings are parsed as comma or space separated lists.
// The returned slice is a copy.
func (s *Store) Numbers(key string) ([]float64, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	switch v := v.(type) {
	case Numbers:
		return append([]float64(nil), v...), nil
	case Number:
		return []float64{float64(v)}, nil
	case String:
		out, err := parseNumbers(string(v))
		if err != nil {
			return nil, &TypeError{Key: key, Want: KindNumbers, Got: KindString, Err: err}
		}
		return out, nil
	default:
		return nil, &TypeError{Key: key, Want: KindNumbers, Got: v.Kind()}
	}
}

// Units returns the list of lengths stored under `key`, or nil.
// Numbers are read as unitless lengths, and strings as a comma or
// space separated list of lengths.
func (s *Store) Units(key string) ([]svgunit.Unit, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	switch v := v.(type) {
	case UnitValue:
		return []svgunit.Unit{svgunit.Unit(v)}, nil
	case Number:
		return []svgunit.Unit{svgunit.New(float64(v), svgunit.None)}, nil
	case Numbers:
		out := make([]svgunit.Unit, len(v))
		for i, f := range v {
			out[i] = svgunit.New(f, svgunit.None)
		}
		return out, nil
	case String:
		var out []svgunit.Unit
		for _, f := range listFields(string(v)) {
			u, err := svgunit.Parse(f)
			if err != nil {
				return nil, &TypeError{Key: key, Want: KindUnit, Got: KindString, Err: err}
			}
			out = append(out, u)
		}
		return out, nil
	default:
		return nil, &TypeError{Key: key, Want: KindUnit, Got: v.Kind()}
	}
}

func listFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func parseNumbers(s string) ([]float64, error) {
	var out []float64
	for _, f := range listFields(s) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Paint returns the paint stored under `key`, or nil.
// A nil paint is also returned for "none".
func (s *Store) Paint(key string) (svgdraw.Paint, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	switch v := v.(type) {
	case PaintValue:
		if v.Paint == nil {
			return nil, nil
		}
		return v.Paint.Copy(), nil
	case String:
		p, err := ParsePaint(string(v))
		if err != nil {
			return nil, &TypeError{Key: key, Want: KindPaint, Got: KindString, Err: err}
		}
		return p, nil
	default:
		return nil, &TypeError{Key: key, Want: KindPaint, Got: v.Kind()}
	}
}

// URI returns the reference stored under `key`.
// It is a required read: an absent key returns ErrUnset.
func (s *Store) URI(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", unsetError(key)
	}
	switch v := v.(type) {
	case URI:
		return string(v), nil
	case String:
		return string(v), nil
	default:
		return "", &TypeError{Key: key, Want: KindURI, Got: v.Kind()}
	}
}

func (s *Store) SetUnit(key string, u svgunit.Unit) { s.Set(key, UnitValue(u)) }

func (s *Store) SetNumber(key string, f float64) { s.Set(key, Number(f)) }

func (s *Store) SetString(key, v string) { s.Set(key, String(v)) }

func (s *Store) SetURI(key, v string) { s.Set(key, URI(v)) }

// SetPaint stores `p`, a nil paint meaning "none".
func (s *Store) SetPaint(key string, p svgdraw.Paint) {
	if p != nil {
		p = p.Copy()
	}
	s.Set(key, PaintValue{Paint: p})
}

// SetNumbers stores a copy of `ns`.
func (s *Store) SetNumbers(key string, ns []float64) {
	s.Set(key, append(Numbers(nil), ns...))
}
