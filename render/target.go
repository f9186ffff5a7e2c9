// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/ggchart"
)

// Target defines where a Canvas draws.
//
// The path methods build the current path in pixel coordinates. FillPath
// and StrokePath consume it.
type Target interface {
	// SetFillBrush sets the brush for FillPath and DrawString.
	SetFillBrush(b gg.Brush)

	// SetStrokeBrush sets the brush for StrokePath.
	SetStrokeBrush(b gg.Brush)

	// SetLineWidth sets the stroke width in pixels.
	SetLineWidth(w float64)

	// SetDash sets alternating on/off lengths for strokes.
	SetDash(lengths ...float64)

	// ClearDash restores solid strokes.
	ClearDash()

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	ClearPath()

	// FillPath fills and clears the current path.
	FillPath() error

	// StrokePath strokes and clears the current path.
	StrokePath() error

	// SetFont sets the face used by DrawString.
	SetFont(face text.Face)

	// DrawString draws s with its baseline origin at (x, y).
	DrawString(s string, x, y float64)

	// DrawIcon draws img scaled into r.
	DrawIcon(img image.Image, r ggchart.Rect)

	// Size returns the target dimensions in pixels.
	Size() (width, height int)
}

// ContextTarget draws immediately on a *gg.Context.
type ContextTarget struct {
	*gg.Context

	mu   sync.Mutex
	bufs map[image.Image]*gg.ImageBuf
}

// NewContextTarget wraps dc.
func NewContextTarget(dc *gg.Context) *ContextTarget {
	return &ContextTarget{Context: dc, bufs: make(map[image.Image]*gg.ImageBuf)}
}

// FillPath implements Target.
func (t *ContextTarget) FillPath() error { return t.Fill() }

// StrokePath implements Target.
func (t *ContextTarget) StrokePath() error { return t.Stroke() }

// Size implements Target.
func (t *ContextTarget) Size() (int, int) { return t.Width(), t.Height() }

// DrawIcon implements Target. Converted image buffers are kept so that an
// icon reused across bars is converted once.
func (t *ContextTarget) DrawIcon(img image.Image, r ggchart.Rect) {
	if img == nil || r.Empty() {
		return
	}
	t.mu.Lock()
	buf, ok := t.bufs[img]
	if !ok {
		buf = gg.ImageBufFromImage(img)
		t.bufs[img] = buf
	}
	t.mu.Unlock()

	t.DrawImageEx(buf, gg.DrawImageOptions{
		X:             r.Left,
		Y:             r.Top,
		DstWidth:      r.Width(),
		DstHeight:     r.Height(),
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

// RecorderTarget captures drawing into a *recording.Recorder.
type RecorderTarget struct {
	*recording.Recorder
}

// NewRecorderTarget wraps r.
func NewRecorderTarget(r *recording.Recorder) *RecorderTarget {
	return &RecorderTarget{Recorder: r}
}

// FillPath implements Target.
func (t *RecorderTarget) FillPath() error {
	t.Fill()
	return nil
}

// StrokePath implements Target.
func (t *RecorderTarget) StrokePath() error {
	t.Stroke()
	return nil
}

// Size implements Target.
func (t *RecorderTarget) Size() (int, int) { return t.Width(), t.Height() }

// DrawIcon implements Target.
func (t *RecorderTarget) DrawIcon(img image.Image, r ggchart.Rect) {
	if img == nil || r.Empty() {
		return
	}
	t.DrawImageScaled(img, r.Left, r.Top, r.Width(), r.Height())
}

var (
	_ Target = (*ContextTarget)(nil)
	_ Target = (*RecorderTarget)(nil)
)
