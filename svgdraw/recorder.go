package svgdraw

var _ Surface = (*Recorder)(nil) // assert interface conformance

// InstructionKind identifies a Surface method.
type InstructionKind uint8

const (
	FillInstruction InstructionKind = iota
	PatternInstruction
	StrokeInstruction
)

func (k InstructionKind) String() string {
	switch k {
	case FillInstruction:
		return "fill"
	case PatternInstruction:
		return "pattern"
	case StrokeInstruction:
		return "stroke"
	default:
		return "<unknown InstructionKind>"
	}
}

// Instruction is one recorded call.
// Only the fields relevant to Kind are set.
type Instruction struct {
	Kind    InstructionKind
	Path    Path
	Paint   Paint
	Pattern ImagePattern
	Fill    FillOptions
	Stroke  StrokeOptions
}

// Recorder is a Surface storing the draw calls it receives,
// which is useful to inspect what an element tree renders.
// Paths and paints are copied.
type Recorder struct {
	Instructions []Instruction
}

func copyPaint(p Paint) Paint {
	if p == nil {
		return nil
	}
	return p.Copy()
}

func (r *Recorder) FillPath(p Path, paint Paint, opts FillOptions) error {
	r.Instructions = append(r.Instructions, Instruction{Kind: FillInstruction, Path: p.Copy(), Paint: copyPaint(paint), Fill: opts})
	return nil
}

func (r *Recorder) FillPathPattern(p Path, pattern ImagePattern, opts FillOptions) error {
	r.Instructions = append(r.Instructions, Instruction{Kind: PatternInstruction, Path: p.Copy(), Pattern: pattern, Fill: opts})
	return nil
}

func (r *Recorder) StrokePath(p Path, paint Paint, opts StrokeOptions) error {
	opts.Dash.Dash = append([]float64(nil), opts.Dash.Dash...)
	r.Instructions = append(r.Instructions, Instruction{Kind: StrokeInstruction, Path: p.Copy(), Paint: copyPaint(paint), Stroke: opts})
	return nil
}

// Reset drops the recorded instructions.
func (r *Recorder) Reset() { r.Instructions = r.Instructions[:0] }

// Replay sends the recorded instructions to `s`, stopping at the first error.
func (r *Recorder) Replay(s Surface) error {
	for _, ins := range r.Instructions {
		var err error
		switch ins.Kind {
		case FillInstruction:
			err = s.FillPath(ins.Path, ins.Paint, ins.Fill)
		case PatternInstruction:
			err = s.FillPathPattern(ins.Path, ins.Pattern, ins.Fill)
		case StrokeInstruction:
			err = s.StrokePath(ins.Path, ins.Paint, ins.Stroke)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
