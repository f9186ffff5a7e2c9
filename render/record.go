// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"

	"github.com/gogpu/gg/recording"
	"github.com/gogpu/ggchart"

	// Register the raster backend for Rasterize.
	_ "github.com/gogpu/gg/recording/backends/raster"
)

// RasterBackend is the name of the recording backend Rasterize uses.
const RasterBackend = "raster"

// Record captures ops into a recording of the given size. The recording
// can be replayed on any backend registered with the recording package.
func Record(width, height int, ops []ggchart.Op, opts ...Option) (*recording.Recording, error) {
	rec := recording.NewRecorder(width, height)
	canvas, err := NewTargetCanvas(NewRecorderTarget(rec), opts...)
	if err != nil {
		return nil, err
	}
	if err := canvas.Draw(ops); err != nil {
		return nil, err
	}
	return rec.FinishRecording(), nil
}

// Rasterize replays rec on the raster backend and returns the pixels.
//
// The raster backend does not draw text; use a Canvas on a gg.Context for
// labelled output.
func Rasterize(rec *recording.Recording) (image.Image, error) {
	backend, err := recording.NewBackend(RasterBackend)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if err := rec.Playback(backend); err != nil {
		return nil, fmt.Errorf("render: playback: %w", err)
	}
	pb, ok := backend.(recording.PixmapBackend)
	if !ok {
		return nil, fmt.Errorf("render: backend %q has no pixmap", RasterBackend)
	}
	pm := pb.Pixmap()
	if pm == nil {
		return nil, fmt.Errorf("render: backend %q produced no pixmap", RasterBackend)
	}
	return pm.ToImage(), nil
}
