package gen

import "github.com/aabbkit/aabbkit/box"

// SpatialDist selects the spatial placement model.
type SpatialDist string

const (
	// SpatialUniform places box centers uniformly over the world.
	SpatialUniform SpatialDist = "uniform"
	// SpatialClustered samples positions around a few Gaussian cluster
	// centers.
	SpatialClustered SpatialDist = "clustered"
	// SpatialGrid lays boxes out on a near-square grid with per-cell
	// size caps, minimizing overlap.
	SpatialGrid SpatialDist = "grid"
	// SpatialPacked uses a jittered grid with enlarged boxes to force
	// heavy overlap.
	SpatialPacked SpatialDist = "packed"
)

// SizeDist selects the edge-length model.
type SizeDist string

const (
	// SizeUniform draws half-extents independently and uniformly.
	SizeUniform SizeDist = "uniform"
	// SizeSkewed draws mostly small boxes with a configurable fraction
	// of large ones.
	SizeSkewed SizeDist = "skewed"
)

// Options contains the generator configuration.
type Options struct {
	// World is the coordinate domain. Both dimensions must be positive.
	World box.World

	// MinSize and MaxSize bound the box edge length. MaxSize is
	// silently clamped to the smaller world dimension (and MinSize
	// pulled down with it) before sampling.
	MinSize float64
	MaxSize float64

	// Spatial and Size select the distribution models.
	Spatial SpatialDist
	Size    SizeDist

	// BigFraction is the probability of a "big" box in skewed mode.
	BigFraction float64
	// BigSizeMult caps big-box edges at MaxSize*BigSizeMult (clamped
	// to the world).
	BigSizeMult float64

	// Occupancy, when > 0, is the target ratio of summed box area to
	// world area; boxes are uniformly rescaled about their centers
	// after generation to approach it.
	Occupancy float64

	// PackedOverlapMult enlarges half-extents in packed mode.
	PackedOverlapMult float64

	// Clusters is the number of cluster centers in clustered mode.
	Clusters int
	// PosSigmaRatio is the Gaussian position sigma as a fraction of
	// the corresponding world dimension in clustered mode.
	PosSigmaRatio float64
}

// DefaultOptions contains the default generator configuration.
var DefaultOptions = Options{
	World:             box.World{Width: 100, Height: 100},
	MinSize:           0.5,
	MaxSize:           5.0,
	Spatial:           SpatialUniform,
	Size:              SizeUniform,
	BigFraction:       0.05,
	BigSizeMult:       3.0,
	Occupancy:         0,
	PackedOverlapMult: 1.5,
	Clusters:          4,
	PosSigmaRatio:     0.05,
}

// WithWorld sets the world dimensions.
func WithWorld(width, height float32) func(*Options) {
	return func(o *Options) {
		o.World = box.World{Width: width, Height: height}
	}
}

// WithSizeRange sets the box edge-length bounds.
func WithSizeRange(minSize, maxSize float64) func(*Options) {
	return func(o *Options) {
		o.MinSize = minSize
		o.MaxSize = maxSize
	}
}

// WithSpatial sets the spatial distribution.
func WithSpatial(dist SpatialDist) func(*Options) {
	return func(o *Options) {
		o.Spatial = dist
	}
}

// WithSize sets the size distribution.
func WithSize(dist SizeDist) func(*Options) {
	return func(o *Options) {
		o.Size = dist
	}
}

// WithSkew sets the skewed-mode big-box fraction and size multiplier.
func WithSkew(bigFraction, bigSizeMult float64) func(*Options) {
	return func(o *Options) {
		o.BigFraction = bigFraction
		o.BigSizeMult = bigSizeMult
	}
}

// WithOccupancy sets the target occupancy ratio.
func WithOccupancy(target float64) func(*Options) {
	return func(o *Options) {
		o.Occupancy = target
	}
}

// WithPackedOverlap sets the packed-mode overlap multiplier.
func WithPackedOverlap(mult float64) func(*Options) {
	return func(o *Options) {
		o.PackedOverlapMult = mult
	}
}

// WithClusters sets the clustered-mode shape.
func WithClusters(clusters int, posSigmaRatio float64) func(*Options) {
	return func(o *Options) {
		o.Clusters = clusters
		o.PosSigmaRatio = posSigmaRatio
	}
}

// ParseSpatialDist parses a spatial distribution name.
func ParseSpatialDist(name string) (SpatialDist, error) {
	switch SpatialDist(name) {
	case SpatialUniform, SpatialClustered, SpatialGrid, SpatialPacked:
		return SpatialDist(name), nil
	}
	return "", &ErrUnknownDistribution{Kind: "spatial", Name: name}
}

// ParseSizeDist parses a size distribution name.
func ParseSizeDist(name string) (SizeDist, error) {
	switch SizeDist(name) {
	case SizeUniform, SizeSkewed:
		return SizeDist(name), nil
	}
	return "", &ErrUnknownDistribution{Kind: "size", Name: name}
}
