// Package raster2d is a small CPU 2D raster graphics engine.
//
// # Overview
//
// raster2d composites filled rectangles, affine-transformed bitmap images,
// and filled triangles into a pixel-addressable [Bitmap] under an affine
// transform stack, using standard Porter-Duff compositing on premultiplied
// pixels. It is deliberately narrow: no antialiasing, no path stroking or
// curves, no text, no GPU, and no concurrency inside a [Context].
//
// # Quick Start
//
//	import "github.com/kestrelgfx/raster2d"
//
//	dc, err := raster2d.NewContext(256, 256)
//	if err != nil {
//		log.Fatal(err)
//	}
//	dc.Clear(raster2d.Black)
//	dc.DrawRect(raster2d.Rect{Left: 10, Top: 10, Right: 100, Bottom: 100},
//		raster2d.Paint{Color: raster2d.Red, Alpha: 1})
//
// # Coordinate system
//
// Origin (0,0) is top-left, x increases right, y increases down, angles
// are in radians with 0 pointing right and increasing clockwise (screen
// space, not mathematical space).
//
// # Architecture
//
//   - Public API: Context, Bitmap, Paint, Matrix, Point, Rect, IRect, Color, Pixel.
//   - Internal: blend (Porter-Duff pixel arithmetic), blit (blitters).
//   - External collaborators (codec, clock, rng) live in sibling packages and
//     are never imported by the core.
package raster2d
