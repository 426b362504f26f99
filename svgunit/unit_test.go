package svgunit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		input    string
		expected Unit
	}{
		{"12", Unit{12, None}},
		{" 12px ", Unit{12, Px}},
		{"2.5mm", Unit{2.5, Mm}},
		{"1cm", Unit{1, Cm}},
		{"3in", Unit{3, In}},
		{"10pt", Unit{10, Pt}},
		{"1pc", Unit{1, Pc}},
		{"1.5em", Unit{1.5, Em}},
		{"2ex", Unit{2, Ex}},
		{"50%", Unit{50, Percent}},
		{"-4", Unit{-4, None}},
		{"1e2", Unit{100, None}},
		{"1e2PT", Unit{100, Pt}},
	} {
		got, err := Parse(test.input)
		require.NoError(t, err, test.input)
		assert.Equal(t, test.expected, got, test.input)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "px", "12qq", "abc", "%", "NaN", "Inf", "-inf", "infinity", "nanpx", "Inf%", "1e400"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalidUnit, input)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, u := range []Unit{{12, None}, {0.5, Mm}, {33, Percent}, {-2, Em}} {
		got, err := Parse(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}
}

func TestToDevice(t *testing.T) {
	ctx := Context{DPI: 72, FontSize: 10, ViewportWidth: 200, ViewportHeight: 100}
	for _, test := range []struct {
		u        Unit
		base     Base
		expected float64
	}{
		{Unit{5, None}, WidthBase, 5},
		{Unit{5, Px}, HeightBase, 5},
		{Unit{1, In}, WidthBase, 72},
		{Unit{72, Pt}, WidthBase, 72},
		{Unit{1, Pc}, WidthBase, 12},
		{Unit{2.54, Cm}, WidthBase, 72},
		{Unit{25.4, Mm}, WidthBase, 72},
		{Unit{2, Em}, WidthBase, 20},
		{Unit{2, Ex}, WidthBase, 10},
		{Unit{50, Percent}, WidthBase, 100},
		{Unit{50, Percent}, HeightBase, 50},
		{Unit{100, Percent}, DiagonalBase, math.Sqrt(200*200+100*100) / math.Sqrt2},
	} {
		assert.InDelta(t, test.expected, test.u.ToDevice(ctx, test.base), 1e-9, test.u.String())
	}
}

func TestToDeviceDeterministic(t *testing.T) {
	ctx := DefaultContext
	ctx.ViewportWidth = 640
	for _, u := range []Unit{{3.3, Mm}, {12, Percent}, {7, Em}, {1.25, In}} {
		first := u.ToDevice(ctx, WidthBase)
		for range [10]int{} {
			assert.Equal(t, first, u.ToDevice(ctx, WidthBase))
		}
	}
}

func TestZeroIsZero(t *testing.T) {
	contexts := []Context{
		{},
		DefaultContext,
		{DPI: math.NaN(), FontSize: math.Inf(1), ViewportWidth: math.NaN()},
	}
	for _, ctx := range contexts {
		for typ := None; typ <= Percent; typ++ {
			for _, base := range []Base{WidthBase, HeightBase, DiagonalBase} {
				assert.Equal(t, 0., Unit{0, typ}.ToDevice(ctx, base))
			}
		}
	}
}
