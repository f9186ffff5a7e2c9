// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/ggchart"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// ErrUnknownOp is returned by Draw for an op type it cannot play.
	ErrUnknownOp = errors.New("render: unknown op")

	// ErrNoPaint is returned for a FillOp without paint.
	ErrNoPaint = errors.New("render: fill has no paint")
)

var defaultSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Option configures a Canvas.
type Option func(*Canvas)

// WithIcons sets the images IconOp.Index refers to.
func WithIcons(icons ...image.Image) Option {
	return func(c *Canvas) {
		c.icons = icons
	}
}

// WithFontSource sets the font used for labels.
func WithFontSource(src *text.FontSource) Option {
	return func(c *Canvas) {
		c.source = src
	}
}

// Canvas plays draw operations onto a Target.
// A Canvas is safe for sequential use only.
type Canvas struct {
	target Target
	source *text.FontSource
	icons  []image.Image
	faces  map[float64]text.Face
}

// NewCanvas returns a Canvas drawing on dc.
func NewCanvas(dc *gg.Context, opts ...Option) (*Canvas, error) {
	return NewTargetCanvas(NewContextTarget(dc), opts...)
}

// NewTargetCanvas returns a Canvas drawing on t.
func NewTargetCanvas(t Target, opts ...Option) (*Canvas, error) {
	c := &Canvas{
		target: t,
		faces:  make(map[float64]text.Face),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.source == nil {
		src, err := defaultSource()
		if err != nil {
			return nil, fmt.Errorf("render: load default font: %w", err)
		}
		c.source = src
	}
	return c, nil
}

// Target returns the surface the canvas draws on.
func (c *Canvas) Target() Target {
	return c.target
}

// Draw plays ops in order. It stops at the first op that fails.
func (c *Canvas) Draw(ops []ggchart.Op) error {
	for i, op := range ops {
		var err error
		switch o := op.(type) {
		case ggchart.FillOp:
			err = c.fill(o)
		case ggchart.StrokeOp:
			err = c.stroke(o)
		case ggchart.TextOp:
			c.text(o)
		case ggchart.IconOp:
			c.icon(o)
		default:
			err = fmt.Errorf("%w: %T", ErrUnknownOp, op)
		}
		if err != nil {
			return fmt.Errorf("render: op %d (%v): %w", i, opKind(op), err)
		}
	}
	ggchart.Logger().Debug("render: drew ops", "count", len(ops))
	return nil
}

func opKind(op ggchart.Op) string {
	if op == nil {
		return "nil"
	}
	return op.Kind().String()
}

func (c *Canvas) fill(op ggchart.FillOp) error {
	brush, err := paintBrush(op.Paint)
	if err != nil {
		return err
	}
	if !appendPath(c.target, op.Path) {
		return nil
	}
	c.target.SetFillBrush(brush)
	return c.target.FillPath()
}

func (c *Canvas) stroke(op ggchart.StrokeOp) error {
	if op.Width <= 0 || !appendPath(c.target, op.Path) {
		c.target.ClearPath()
		return nil
	}
	c.target.SetStrokeBrush(gg.Solid(op.Color.RGBA()))
	c.target.SetLineWidth(op.Width)
	if len(op.Dash) > 0 {
		c.target.SetDash(op.Dash...)
	} else {
		c.target.ClearDash()
	}
	err := c.target.StrokePath()
	c.target.ClearDash()
	return err
}

func (c *Canvas) text(op ggchart.TextOp) {
	if op.Text == "" || op.Size <= 0 {
		return
	}
	face := c.face(op.Size)
	x, y := textOrigin(face, op)
	c.target.SetFont(face)
	c.target.SetFillBrush(gg.Solid(op.Color.RGBA()))
	c.target.DrawString(op.Text, x, y)
}

func (c *Canvas) icon(op ggchart.IconOp) {
	if op.Index < 0 || op.Index >= len(c.icons) || c.icons[op.Index] == nil {
		ggchart.Logger().Warn("render: missing icon", "index", op.Index, "icons", len(c.icons))
		return
	}
	c.target.DrawIcon(c.icons[op.Index], op.Bounds)
}

func (c *Canvas) face(size float64) text.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := c.source.Face(size)
	c.faces[size] = f
	return f
}

// textOrigin converts the anchor of op to the baseline origin of its first
// glyph.
func textOrigin(face text.Face, op ggchart.TextOp) (x, y float64) {
	x = op.X - face.Advance(op.Text)*op.Align.Anchor()
	y = op.Y
	if op.Baseline == ggchart.BaselineMiddle {
		m := face.Metrics()
		y += (m.Ascent - m.Descent) / 2
	}
	return x, y
}

func paintBrush(p ggchart.Paint) (gg.Brush, error) {
	switch v := p.(type) {
	case ggchart.Color:
		return gg.Solid(v.RGBA()), nil
	case *ggchart.Gradient:
		if v == nil {
			return nil, ErrNoPaint
		}
		return v.Brush(), nil
	case nil:
		return nil, ErrNoPaint
	default:
		return nil, fmt.Errorf("render: unsupported paint %T", p)
	}
}

// appendPath replays p onto t and reports whether it had any elements.
func appendPath(t Target, p *gg.Path) bool {
	if p == nil {
		return false
	}
	elems := p.Elements()
	if len(elems) == 0 {
		return false
	}
	t.ClearPath()
	var cur gg.Point
	for _, el := range elems {
		switch e := el.(type) {
		case gg.MoveTo:
			t.MoveTo(e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.LineTo:
			t.LineTo(e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.QuadTo:
			c1 := cur.Lerp(e.Control, 2.0/3)
			c2 := e.Point.Lerp(e.Control, 2.0/3)
			t.CubicTo(c1.X, c1.Y, c2.X, c2.Y, e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.CubicTo:
			t.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.Close:
			t.ClosePath()
		}
	}
	return true
}
