// Package osgl is a software 2D rasterizer for Go.
//
// # Overview
//
// osgl maintains an in-memory buffer of packed 32-bit colors (a [Pixmap])
// and rasterizes points, lines, circles, rectangles, and arbitrary polygons
// into it. Rendering is pure CPU scanline work: there is no GPU pipeline,
// no anti-aliasing, and no text support. Presenting a finished buffer to an
// actual display is delegated to the surface package, which hands frames to
// a pluggable host collaborator.
//
// # Quick Start
//
//	import "github.com/jukepilot/osgl"
//
//	pm := osgl.NewPixmap(256, 256)
//	pm.Clear(osgl.White)
//
//	style := osgl.DefaultCircleStyle().WithFill(osgl.Red)
//	osgl.DrawCircle(pm, 128, 128, 64, style)
//
//	pm.SavePNG("out.png")
//
// # Drawables
//
// Every draw operation targets the [Drawable] interface: anything with a
// width, a height, and a mutable pixel store. Both *[Pixmap] and
// *surface.Surface satisfy it.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation angles in degrees, clockwise
//
// # Bounds Checking
//
// SetPixel rejects negative coordinates but does not check the upper
// bounds: the rasterizers clip to the target before writing, so the
// comparison would be redundant in the hot path. Callers that write pixels
// directly and cannot guarantee their coordinates should use
// [Pixmap.SetPixelChecked] instead. This is a contract, not an oversight.
//
// # Concurrency
//
// Pixmaps and Surfaces are NOT safe for concurrent use. Each buffer has
// exactly one owner; use external synchronization if two goroutines must
// touch the same buffer.
package osgl

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
