// Package ggchart lays out small data-visualization widgets for the gg 2D
// graphics library.
//
// # Overview
//
// ggchart computes the geometry of two chart types and emits it as an
// ordered list of draw operations:
//   - CylinderChart: pill-shaped progress bars with a value axis, dashed
//     gridlines, an icon row and a value label on each bar head
//   - WaveChart: smoothed line series with a gradient fill under each curve,
//     assist lines and a focus dot
//
// The geometry engine underneath is usable on its own: NiceScale picks
// readable axis ticks, Mapper converts values to pixels under any
// Orientation, ControlPoints smooths a polyline without overshoot, and
// BuildProgress produces the fill and remainder outlines of a bar.
//
// # Quick Start
//
//	chart := ggchart.NewCylinderChart(ggchart.NewRect(0, 0, 640, 400),
//	    []ggchart.Bar{{Value: 160}, {Value: 112}, {Value: 98}})
//
//	ops, err := chart.DrawOps()
//	if err != nil {
//	    return err
//	}
//
//	dc := gg.NewContext(640, 400)
//	canvas, err := render.NewCanvas(dc)
//	if err != nil {
//	    return err
//	}
//	if err := canvas.Draw(ops); err != nil {
//	    return err
//	}
//	dc.SavePNG("chart.png")
//
// # Coordinate System
//
// Pixel coordinates as in gg:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Data values grow away from the Orientation's base edge.
//
// # Sub-packages
//
//   - render: plays draw operations onto a gg.Context or a recording
//   - config: YAML chart descriptions
package ggchart
