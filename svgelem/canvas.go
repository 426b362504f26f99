package svgelem

import (
	"errors"
	"fmt"
	"io"

	"github.com/benoitkugler/svgdom/svgdraw"
	"github.com/benoitkugler/svgdom/svgunit"
	"github.com/charmbracelet/log"
)

// ErrorMode sets how the render walk reacts to an element failing to render.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips the failing element silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs the error, then skips the failing element.
	WarnErrorMode
	// StrictErrorMode aborts the whole rendering.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

// RenderError identifies the element which failed to render.
type RenderError struct {
	Tag string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("svgelem: rendering <%s>: %s", e.Tag, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Canvas is the rendering context given to Render:
// the target surface, the parameters resolving units to
// device space, and the failure policy.
type Canvas struct {
	Surface   svgdraw.Surface
	Units     svgunit.Context
	ErrorMode ErrorMode
	Logger    *log.Logger
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithUnits sets the full unit context.
func WithUnits(ctx svgunit.Context) Option {
	return func(c *Canvas) { c.Units = ctx }
}

func WithDPI(dpi float64) Option {
	return func(c *Canvas) { c.Units.DPI = dpi }
}

// WithViewport sets the reference size used by percentages.
func WithViewport(width, height float64) Option {
	return func(c *Canvas) {
		c.Units.ViewportWidth = width
		c.Units.ViewportHeight = height
	}
}

func WithErrorMode(mode ErrorMode) Option {
	return func(c *Canvas) { c.ErrorMode = mode }
}

// WithLogger sets the logger used in WarnErrorMode,
// and for debug messages.
func WithLogger(logger *log.Logger) Option {
	return func(c *Canvas) { c.Logger = logger }
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: "svgelem"})
}

// NewCanvas returns a canvas targeting `surface`, using
// svgunit.DefaultContext, IgnoreErrorMode and a silent logger
// unless overridden by `opts`.
func NewCanvas(surface svgdraw.Surface, opts ...Option) *Canvas {
	c := &Canvas{
		Surface: surface,
		Units:   svgunit.DefaultContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Logger == nil {
		c.Logger = discardLogger()
	}
	return c
}

// handle applies the error policy to the error returned
// by `e.Render`. A non nil return value aborts the walk.
func (c *Canvas) handle(e Element, err error) error {
	if err == nil {
		return nil
	}
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		err = &RenderError{Tag: e.TagName(), Err: err}
	}
	switch c.ErrorMode {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		c.Logger.Warn("skipping element", "tag", e.TagName(), "err", err)
	}
	return nil
}
