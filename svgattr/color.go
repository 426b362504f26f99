package svgattr

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgdom/svgdraw"
	"golang.org/x/image/colornames"
)

var errParamMismatch = errors.New("param mismatch")

// ParsePaint reads a color attribute: "none", a keyword,
// "#rgb", "#rrggbb" or "rgb(r, g, b)" (with integer or percent components).
// "none" returns a nil Paint.
func ParsePaint(v string) (svgdraw.Paint, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "none" || v == "" {
		return nil, nil
	}
	c, err := parseSVGColor(v)
	if err != nil {
		return nil, err
	}
	return svgdraw.PlainColor{RGBA: c}, nil
}

func parseSVGColor(v string) (color.RGBA, error) {
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	if strings.HasPrefix(v, "#") {
		return parseHex(v[1:])
	}
	if strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")") {
		return parseRGB(v[4 : len(v)-1])
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", v)
}

func parseHex(h string) (color.RGBA, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color #%s: %w", h, errParamMismatch)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color #%s: %w", h, err)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}

func parseRGB(args string) (color.RGBA, error) {
	fields := strings.Split(args, ",")
	if len(fields) != 3 {
		return color.RGBA{}, fmt.Errorf("invalid rgb() color: %w", errParamMismatch)
	}
	var comps [3]uint8
	for i, f := range fields {
		f = strings.TrimSpace(f)
		var (
			val float64
			err error
		)
		if strings.HasSuffix(f, "%") {
			val, err = strconv.ParseFloat(f[:len(f)-1], 64)
			val = val * 255 / 100
		} else {
			val, err = strconv.ParseFloat(f, 64)
		}
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid rgb() component %q: %w", f, err)
		}
		if val < 0 {
			val = 0
		} else if val > 255 {
			val = 255
		}
		comps[i] = uint8(val + 0.5)
	}
	return color.RGBA{R: comps[0], G: comps[1], B: comps[2], A: 0xff}, nil
}

// FormatPaint is the inverse of ParsePaint for plain colors.
// Gradients are described as "gradient", since they are
// referenced by url in SVG files.
func FormatPaint(p svgdraw.Paint) string {
	switch p := p.(type) {
	case nil:
		return "none"
	case svgdraw.PlainColor:
		return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
	default:
		return "gradient"
	}
}
