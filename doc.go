// Package icplace places the initial cells of an agent-based simulation. It
// provides the geometry behind drawing placement brushes over a rectangular
// simulation domain, deciding whether a brush may be plotted, and filling it
// with cell centers that are written out as a positions CSV.
//
// # Domains and shapes
//
// A [Domain] is the simulation box. It is flat when its z extent is at most
// one voxel ([Domain.Is2D]); otherwise samplers also draw z.
//
// [Shape] is a closed set of brush types, each a plain value type:
//   - [Everywhere]
//   - [Rectangle]
//   - [Disc]
//   - [Annulus]
//   - [Wedge]
//   - [Ring]
//   - [Spatial]
//
// [DefaultShape] returns a sensible starting brush for a domain. Angles are
// bearings in degrees, measured counter-clockwise from the positive x axis;
// [NormalizeThetas] brings a span into the canonical form used throughout.
//
// # Validity
//
// [Valid] is the "can I plot?" predicate: the shape must be well formed and
// overlap the domain with positive area. Rectangles use an open interval
// overlap test, discs and annuli compare the squared distance to the domain
// ([Domain.DistanceSquared]) and to its farthest point
// ([Domain.CircumscribingRadiusSquared]) with the radii. Wedges add an exact
// angular test, [WedgeInDomain].
//
// # Sampling
//
// [SampleShape] draws cells uniformly from a shape clipped to the domain,
// using area-uniform proposals inside the shape and rejecting those outside
// the domain. [HexPack] fills a shape with a deterministic hexagonal lattice,
// [RingPoints] lines cells up along an arc, and [SpatialPoints] maps a spot
// layout into the domain, optionally expanding each spot into several cells.
// Cell sizes come from volumes via [CellRadius].
//
// # Sessions
//
// A [Session] owns the live brush of each kind together with its
// [History], and the [Placements] plotted so far. A [Controller] drives a
// session from pointer and key events. [Save] writes placements as
// "x,y,z,type" rows.
package icplace
