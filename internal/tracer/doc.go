// Package tracer renders a single sphere with a pinhole camera.
//
// The kernel is pure: the same Camera always produces the same bytes, and
// every pixel is computed independently of the others. Render walks the
// image on the calling goroutine; RenderParallel splits it by rows.
//
// Pixel mapping:
//
//	x = i mod W
//	y = RowAnchor - i/W
//	u = x / (W-1), v = y / (H-1)
//	ray = (Origin, LowerLeft + u*Horizontal + v*Vertical - Origin)
//
// RowAnchor defaults to 256, which is what the viewer has always used for its
// 400x225 image. It overshoots the viewport top by 31 rows; a negative
// RowAnchor selects H-1 instead.
package tracer
