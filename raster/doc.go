// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster draws bubble outlines into images.
//
// The bubble package only describes outlines. This package fills the
// outline with the style's background, strokes it with the border and
// optionally draws a text label where the layout places the content.
// Coverage is computed by golang.org/x/image/vector.
//
//	l := bubble.Measure(bubble.Size{Width: 80, Height: 16}, style)
//	img := raster.Render(l, style, raster.WithScale(2))
//	err := raster.SavePNG(img, "bubble.png")
package raster
