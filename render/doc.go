// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render plays ggchart draw operations onto gg surfaces.
//
// Charts in the ggchart package only compute geometry. A Canvas turns the
// resulting []ggchart.Op into gg calls on a Target.
//
// # Targets
//
//   - ContextTarget: immediate rasterization on a *gg.Context
//   - RecorderTarget: command capture on a *recording.Recorder, replayable
//     on any registered recording backend
//
// # Usage
//
// Immediate mode:
//
//	dc := gg.NewContext(640, 400)
//	canvas, err := render.NewCanvas(dc, render.WithIcons(icons...))
//	if err != nil {
//	    return err
//	}
//	if err := canvas.Draw(ops); err != nil {
//	    return err
//	}
//	dc.SavePNG("chart.png")
//
// Recorded:
//
//	rec, err := render.Record(640, 400, ops)
//	if err != nil {
//	    return err
//	}
//	img, err := render.Rasterize(rec)
//
// # Text
//
// Labels use the Go Regular font unless WithFontSource supplies another
// one. Faces are cached per size.
package render
