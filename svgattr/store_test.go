package svgattr

import (
	"errors"
	"testing"

	"github.com/benoitkugler/svgdom/svgdraw"
	"github.com/benoitkugler/svgdom/svgunit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	var s Store
	_, ok := s.Get("x")
	assert.False(t, ok)

	s.SetNumber("x", 1)
	s.SetUnit("x", svgunit.New(2, svgunit.Mm))
	v, ok := s.Get("x")
	require.True(t, ok)
	assert.Equal(t, KindUnit, v.Kind())
	assert.Equal(t, 1, s.Len())

	s.Set("x", nil)
	assert.False(t, s.Has("x"))
}

func TestTypedReads(t *testing.T) {
	s := NewStore(map[string]string{
		"width":   "10mm",
		"opacity": "0.5",
		"dash":    "1, 2 3",
		"fill":    "#ff0000",
	})
	s.SetNumber("n", 4)

	u, err := s.Unit("width")
	require.NoError(t, err)
	assert.Equal(t, svgunit.New(10, svgunit.Mm), u)

	u, err = s.Unit("n")
	require.NoError(t, err)
	assert.Equal(t, svgunit.New(4, svgunit.None), u)

	f, err := s.Number("opacity")
	require.NoError(t, err)
	assert.Equal(t, 0.5, f)

	ns, err := s.Numbers("dash")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, ns)

	p, err := s.Paint("fill")
	require.NoError(t, err)
	assert.Equal(t, svgdraw.NewPlainColor(255, 0, 0, 255), p)

	str, err := s.Str("width")
	require.NoError(t, err)
	assert.Equal(t, "10mm", str)
}

func TestAbsentIsZero(t *testing.T) {
	var s Store
	u, err := s.Unit("x")
	assert.NoError(t, err)
	assert.Equal(t, svgunit.Unit{}, u)

	f, err := s.Number("x")
	assert.NoError(t, err)
	assert.Zero(t, f)

	p, err := s.Paint("fill")
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestMismatchIsExplicit(t *testing.T) {
	var s Store
	s.SetNumbers("dash", []float64{1, 2})
	s.SetString("width", "wide")
	s.SetUnit("font", svgunit.New(2, svgunit.Em))
	s.SetPaint("fill", svgdraw.NewPlainColor(1, 2, 3, 255))

	_, err := s.Unit("dash")
	var te *TypeError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "dash", te.Key)
	assert.Equal(t, KindUnit, te.Want)
	assert.Equal(t, KindNumbers, te.Got)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = s.Unit("width")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorIs(t, err, svgunit.ErrInvalidUnit)

	_, err = s.Number("font")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = s.Str("fill")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = s.Paint("width")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = s.URI("dash")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestRequiredReads(t *testing.T) {
	var s Store
	_, err := s.URI("href")
	assert.ErrorIs(t, err, ErrUnset)
	_, err = s.Require("href")
	assert.ErrorIs(t, err, ErrUnset)

	s.SetString("href", "data:image/png,AAAA")
	uri, err := s.URI("href")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png,AAAA", uri)
}

func TestCloneIsDeep(t *testing.T) {
	var s Store
	dash := []float64{1, 2}
	s.SetNumbers("dash", dash)
	dash[0] = 10 // the setter copies
	s.SetPaint("fill", svgdraw.Gradient{Direction: svgdraw.Linear{0, 0, 1, 1}, Stops: []svgdraw.GradStop{{Offset: 0.2}}})

	cp := s.Clone()
	assert.True(t, s.Equal(cp))

	v, _ := s.Get("dash")
	v.(Numbers)[0] = 5
	got, err := cp.Numbers("dash")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)

	v, _ = s.Get("fill")
	v.(PaintValue).Paint.(svgdraw.Gradient).Stops[0].Offset = 0.9
	p, err := cp.Paint("fill")
	require.NoError(t, err)
	assert.Equal(t, 0.2, p.(svgdraw.Gradient).Stops[0].Offset)

	cp.SetNumber("opacity", 1)
	assert.False(t, s.Has("opacity"))
	assert.Equal(t, []string{"dash", "fill", "opacity"}, cp.Keys())
}

func TestParsePaint(t *testing.T) {
	for _, test := range []struct {
		in       string
		expected svgdraw.Paint
	}{
		{"none", nil},
		{"red", svgdraw.NewPlainColor(255, 0, 0, 255)},
		{"#0f0", svgdraw.NewPlainColor(0, 255, 0, 255)},
		{"#102030", svgdraw.NewPlainColor(0x10, 0x20, 0x30, 255)},
		{"rgb(1, 2, 3)", svgdraw.NewPlainColor(1, 2, 3, 255)},
		{"rgb(100%, 0%, 50%)", svgdraw.NewPlainColor(255, 0, 128, 255)},
		{" Blue ", svgdraw.NewPlainColor(0, 0, 255, 255)},
	} {
		got, err := ParsePaint(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.expected, got, test.in)
	}

	for _, bad := range []string{"#12", "#gggggg", "rgb(1,2)", "notacolor"} {
		_, err := ParsePaint(bad)
		assert.Error(t, err, bad)
	}

	assert.Equal(t, "#102030", FormatPaint(svgdraw.NewPlainColor(0x10, 0x20, 0x30, 255)))
	assert.Equal(t, "none", FormatPaint(nil))
}

func TestInherit(t *testing.T) {
	self := NewStore(map[string]string{"x": "1"})
	parent := NewStore(map[string]string{"fill": "red"})
	root := NewStore(map[string]string{"fill": "blue", "stroke": "green"})

	v, ok := Inherit("fill", self, []*Store{parent, root})
	require.True(t, ok)
	assert.Equal(t, String("red"), v)

	v, ok = Inherit("stroke", self, []*Store{parent, nil, root})
	require.True(t, ok)
	assert.Equal(t, String("green"), v)

	_, ok = Inherit("opacity", self, []*Store{parent, root})
	assert.False(t, ok)

	p, err := Resolved("fill", self, []*Store{parent, root}).Paint("fill")
	require.NoError(t, err)
	assert.Equal(t, svgdraw.NewPlainColor(255, 0, 0, 255), p)

	// the store itself never falls back
	assert.False(t, self.Has("fill"))
}

func TestEqualNil(t *testing.T) {
	var empty Store
	assert.True(t, empty.Equal(nil))
	assert.True(t, (*Store)(nil).Equal(&empty))
	assert.Equal(t, 0, (*Store)(nil).Len())

	s := NewStore(map[string]string{"x": "1"})
	assert.False(t, s.Equal(nil))
	assert.False(t, (*Store)(nil).Equal(s))
}

func TestUnitsList(t *testing.T) {
	s := NewStore(map[string]string{"dash": "5px, 3mm 50%", "bad": "1 two"})
	us, err := s.Units("dash")
	require.NoError(t, err)
	assert.Equal(t, []svgunit.Unit{svgunit.New(5, svgunit.Px), svgunit.New(3, svgunit.Mm), svgunit.New(50, svgunit.Percent)}, us)

	_, err = s.Units("bad")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorIs(t, err, svgunit.ErrInvalidUnit)

	s.SetNumbers("nums", []float64{1, 2})
	us, err = s.Units("nums")
	require.NoError(t, err)
	assert.Equal(t, []svgunit.Unit{svgunit.New(1, svgunit.None), svgunit.New(2, svgunit.None)}, us)

	us, err = s.Units("missing")
	require.NoError(t, err)
	assert.Nil(t, us)

	s.SetURI("href", "a.png")
	_, err = s.Units("href")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
