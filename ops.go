package ggchart

import "github.com/gogpu/gg"

// OpKind identifies the type of a draw operation.
type OpKind uint8

const (
	OpFill   OpKind = iota // Fill a path
	OpStroke               // Stroke a path
	OpText                 // Draw a text label
	OpIcon                 // Draw an icon image
)

var opKindNames = [...]string{
	OpFill:   "Fill",
	OpStroke: "Stroke",
	OpText:   "Text",
	OpIcon:   "Icon",
}

// String returns the name of the kind.
func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "Unknown"
}

// Op is one draw operation emitted by a chart. Ops are played in order.
type Op interface {
	Kind() OpKind
}

// Paint is what a FillOp fills with: a Color or a *Gradient.
type Paint interface {
	isPaint()
}

func (Color) isPaint()     {}
func (*Gradient) isPaint() {}

// FillOp fills Path with Paint using the non-zero rule.
type FillOp struct {
	Path  *gg.Path
	Paint Paint
}

// StrokeOp strokes Path. A non-empty Dash alternates on and off lengths.
type StrokeOp struct {
	Path  *gg.Path
	Color Color
	Width float64
	Dash  []float64
}

// TextAlign is the horizontal anchor of a label.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Anchor returns the horizontal anchor fraction (0, 0.5 or 1).
func (a TextAlign) Anchor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// Baseline is the vertical meaning of TextOp.Y.
type Baseline uint8

const (
	// BaselineAlphabetic puts the glyph baseline at Y.
	BaselineAlphabetic Baseline = iota
	// BaselineMiddle centres the glyph box on Y.
	BaselineMiddle
)

// TextOp draws Text with its anchor at (X, Y). Size is the font size in
// pixels.
type TextOp struct {
	Text     string
	X, Y     float64
	Size     float64
	Align    TextAlign
	Baseline Baseline
	Color    Color
}

// IconOp draws icon number Index scaled into Bounds. The renderer owns the
// icon images.
type IconOp struct {
	Index  int
	Bounds Rect
}

func (FillOp) Kind() OpKind   { return OpFill }
func (StrokeOp) Kind() OpKind { return OpStroke }
func (TextOp) Kind() OpKind   { return OpText }
func (IconOp) Kind() OpKind   { return OpIcon }

// linePath returns an open two-point path.
func linePath(a, b gg.Point) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)
	return p
}
