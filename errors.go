package icplace

import "errors"

var (
	// ErrInvalidShape means the shape parameters are degenerate, e.g. an
	// annulus whose outer radius does not exceed its inner radius.
	ErrInvalidShape = errors.New("icplace: degenerate shape")

	// ErrNoIntersection means a well-formed shape has no positive-area
	// overlap with the domain.
	ErrNoIntersection = errors.New("icplace: shape does not intersect the domain")

	// ErrAppendFormat means an existing CSV lacks the x,y,z,type header and
	// cannot be appended to.
	ErrAppendFormat = errors.New("icplace: file is not a cell positions CSV")

	// ErrSamplingStalled means a rejection sampler exhausted its proposal
	// budget before accepting the requested number of points.
	ErrSamplingStalled = errors.New("icplace: rejection sampling stalled")

	ErrUnknownCellType = errors.New("icplace: unknown cell type")
	ErrInvalidDomain   = errors.New("icplace: invalid domain")
	ErrNegativeCount   = errors.New("icplace: negative cell count")

	// ErrNoSpots means a spatial shape was plotted without any spots loaded.
	ErrNoSpots = errors.New("icplace: no spots loaded")
)
