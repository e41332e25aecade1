// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"github.com/gogpu/bubble"
	"golang.org/x/image/font"
)

// Option configures Render.
type Option func(*options)

type options struct {
	scale     float64
	tolerance float64
	canvas    bubble.RGBA

	label      string
	labelFace  font.Face
	labelColor bubble.RGBA
}

func defaultOptions() options {
	return options{
		scale:      1,
		tolerance:  0.1,
		canvas:     bubble.Transparent,
		labelColor: bubble.Black,
	}
}

// WithScale renders at the given device scale (pixels per point).
// Non-positive values are ignored.
func WithScale(scale float64) Option {
	return func(o *options) {
		if scale > 0 {
			o.scale = scale
		}
	}
}

// WithTolerance sets the maximum deviation, in pixels, allowed when curves
// are flattened for stroking. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithCanvas fills the whole image with c before drawing the bubble.
func WithCanvas(c bubble.RGBA) Option {
	return func(o *options) {
		o.canvas = c
	}
}

// WithLabel draws text into the layout's content rectangle using face.
// The face must already be sized for the render scale.
func WithLabel(text string, face font.Face, c bubble.RGBA) Option {
	return func(o *options) {
		o.label = text
		o.labelFace = face
		o.labelColor = c
	}
}
