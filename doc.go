// Package bubble builds the outline of a tooltip bubble: a rounded
// rectangle with one arrow protruding from its top or bottom edge.
//
// # Overview
//
// The package is pure geometry. Build turns a rectangle and a Style into a
// Path made of MoveTo, LineTo, QuadTo and ArcTo segments; Measure fits a
// bubble around content of a known size. Drawing is left to the caller:
// see the raster subpackage for an image renderer and Path.ToSVG for SVG.
//
// # Quick Start
//
//	style := bubble.DefaultStyle().
//		WithArrowAlignment(bubble.ArrowTop).
//		WithArrowOffset(12, 0)
//
//	l := bubble.Measure(bubble.Size{Width: 100, Height: 40}, style)
//	fmt.Println(l.Size)          // {114 61}
//	fmt.Println(l.Path.ToSVG())  // M... A... Q... Z
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing angles turn towards +Y
//
// # Concurrency
//
// Every function is free of side effects apart from optional debug
// logging (see SetLogger), so all of them may be called concurrently.
package bubble

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
