// Package dashoutline turns outlines into dashed strokes, the way a font
// editor filter would: every contour is cut into dashes and gaps by arc
// length, the dashes are stroked and their corners rounded.
//
// # Outlines
//
// An [Outline] is a list of [Path] values, and a Path is a list of [Segment]
// values, each of which is either a line or a cubic Bézier. Paths are
// contiguous; a path whose end point equals its start point is closed.
// Functions in this package treat their inputs as immutable and return new
// paths.
//
// Outlines can be built from path elements ([OutlineFromElements]), from SVG
// path data ([ParseSVG]) and from shapes such as [Circle]. [SVG] and
// [WriteSVGDocument] write them back out.
//
// # Dashing
//
// Lengths are measured by adaptive subdivision (see [CubicBez.Length]), with
// a flatness tolerance in font units. [SplitAtLength] cuts a path at a given
// length, and a [Dasher] alternates dash and gap lengths along each path,
// optionally scaled by a [DistributionFactor] so that whole cycles fit.
// Dashes too short to survive stroking are dropped.
//
// # Stroking and rounding
//
// Stroking and corner rounding are done through the [Offsetter] and
// [CornerRounder] interfaces. [Stroker] and [Rounder] implement them well
// enough for dashes; hosts with a proper offset-curve library plug in their
// own.
//
// [Filter] runs the whole pipeline. Its parameters can be described by, and
// parsed from, custom parameter strings such as
//
//	DashedOutline; strokeWidth:40; dash:300; gap:50; distribute:0; strokePosition:50
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
package dashoutline
