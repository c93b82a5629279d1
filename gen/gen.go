package gen

import (
	"math"

	"github.com/aabbkit/aabbkit/box"
)

// Generate produces n boxes inside the configured world using the
// given RNG. All geometric parameters are validated or silently
// clamped before any sampling, so generation itself cannot fail.
func Generate(rng *RNG, n int, optFns ...func(*Options)) (*box.Dataset, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := validate(n, &opts); err != nil {
		return nil, err
	}

	// Clamp max_size to the smaller world dimension, keeping ordering.
	maxAllowed := math.Min(float64(opts.World.Width), float64(opts.World.Height))
	if opts.MaxSize > maxAllowed {
		opts.MaxSize = maxAllowed
		if opts.MinSize > opts.MaxSize {
			opts.MinSize = opts.MaxSize
		}
	}

	var boxes []box.Box
	switch opts.Spatial {
	case SpatialClustered:
		boxes = genClustered(rng, n, &opts)
	case SpatialGrid:
		boxes = genGrid(rng, n, &opts)
	case SpatialPacked:
		boxes = genPacked(rng, n, &opts)
	default:
		boxes = genUniform(rng, n, &opts)
	}

	boxes = scaleToOccupancy(boxes, &opts)

	return &box.Dataset{Boxes: boxes, World: opts.World}, nil
}

func validate(n int, o *Options) error {
	if n <= 0 {
		return &ErrNonPositive{Param: "n", Value: float64(n)}
	}
	if o.World.Width <= 0 {
		return &ErrNonPositive{Param: "width", Value: float64(o.World.Width)}
	}
	if o.World.Height <= 0 {
		return &ErrNonPositive{Param: "height", Value: float64(o.World.Height)}
	}
	if o.MinSize <= 0 {
		return &ErrNonPositive{Param: "min_size", Value: o.MinSize}
	}
	if o.MaxSize <= 0 {
		return &ErrNonPositive{Param: "max_size", Value: o.MaxSize}
	}
	if o.MinSize > o.MaxSize {
		return &ErrSizeOrder{MinSize: o.MinSize, MaxSize: o.MaxSize}
	}
	switch o.Spatial {
	case SpatialUniform, SpatialClustered, SpatialGrid, SpatialPacked:
	default:
		return &ErrUnknownDistribution{Kind: "spatial", Name: string(o.Spatial)}
	}
	switch o.Size {
	case SizeUniform, SizeSkewed:
	default:
		return &ErrUnknownDistribution{Kind: "size", Name: string(o.Size)}
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// sampleSize returns half-width and half-height per the size model.
// Uniform mode draws both extents independently; skewed mode draws one
// edge length (big or small) and perturbs it into a rectangle with an
// aspect ratio in [0.8, 1.25).
func sampleSize(rng *RNG, o *Options) (hw, hh float64) {
	if o.Size == SizeUniform {
		hw = rng.Uniform(o.MinSize*0.5, o.MaxSize*0.5)
		hh = rng.Uniform(o.MinSize*0.5, o.MaxSize*0.5)
		return hw, hh
	}

	maxEdgeWorld := math.Min(float64(o.World.Width), float64(o.World.Height))
	var edge float64
	if rng.Float64() < o.BigFraction {
		bigMax := math.Min(maxEdgeWorld, o.MaxSize*o.BigSizeMult)
		edge = rng.Uniform(o.MaxSize*0.5, bigMax*0.5)
	} else {
		// Small box, biased toward min_size: upper bound at 30% of the
		// size range.
		upperSmall := math.Min(o.MaxSize, o.MinSize+(o.MaxSize-o.MinSize)*0.3)
		edge = rng.Uniform(o.MinSize*0.5, upperSmall*0.5)
	}
	aspect := rng.Uniform(0.8, 1.25)
	return edge * aspect, edge / aspect
}

// boxAt builds a box from a center and half-extents, clamps it into the
// world and repairs any min/max inversion the clamping caused.
func boxAt(x, y, hw, hh float64, o *Options) box.Box {
	w := float64(o.World.Width)
	h := float64(o.World.Height)
	minX := clamp(x-hw, 0, w)
	maxX := clamp(x+hw, 0, w)
	minY := clamp(y-hh, 0, h)
	maxY := clamp(y+hh, 0, h)
	if maxX < minX {
		minX, maxX = maxX, minX
	}
	if maxY < minY {
		minY, maxY = maxY, minY
	}
	return box.Box{
		MinX: float32(minX), MinY: float32(minY),
		MaxX: float32(maxX), MaxY: float32(maxY),
	}
}

func genUniform(rng *RNG, n int, o *Options) []box.Box {
	w := float64(o.World.Width)
	h := float64(o.World.Height)
	boxes := make([]box.Box, 0, n)
	for i := 0; i < n; i++ {
		hw, hh := sampleSize(rng, o)
		// Offset the center so the box stays inside when it fits.
		x := rng.Uniform(hw, math.Max(hw, w-hw))
		y := rng.Uniform(hh, math.Max(hh, h-hh))
		boxes = append(boxes, boxAt(x, y, hw, hh, o))
	}
	return boxes
}

func genClustered(rng *RNG, n int, o *Options) []box.Box {
	w := float64(o.World.Width)
	h := float64(o.World.Height)

	k := o.Clusters
	if k < 1 {
		k = 1
	}
	type center struct{ x, y float64 }
	centers := make([]center, k)
	for i := range centers {
		// Centers land in the inner 70% of the world.
		centers[i] = center{
			x: rng.Uniform(0.15*w, 0.85*w),
			y: rng.Uniform(0.15*h, 0.85*h),
		}
	}
	sigmaX := w * o.PosSigmaRatio
	sigmaY := h * o.PosSigmaRatio

	boxes := make([]box.Box, 0, n)
	for i := 0; i < n; i++ {
		c := centers[rng.Intn(k)]
		hw, hh := sampleSize(rng, o)
		x := clamp(rng.Gauss(c.x, sigmaX), hw, math.Max(hw, w-hw))
		y := clamp(rng.Gauss(c.y, sigmaY), hh, math.Max(hh, h-hh))
		boxes = append(boxes, boxAt(x, y, hw, hh, o))
	}
	return boxes
}

func genGrid(rng *RNG, n int, o *Options) []box.Box {
	w := float64(o.World.Width)
	h := float64(o.World.Height)

	cols := int(math.Ceil(math.Sqrt(float64(n) * (w / h))))
	if cols < 1 {
		cols = 1
	}
	rows := int(math.Ceil(float64(n) / float64(cols)))
	if rows < 1 {
		rows = 1
	}
	cellW := w / float64(cols)
	cellH := h / float64(rows)

	boxes := make([]box.Box, 0, n)
	for r := 0; r < rows && len(boxes) < n; r++ {
		for c := 0; c < cols && len(boxes) < n; c++ {
			hw, hh := sampleSize(rng, o)
			// Cap extents at 45% of the cell to minimize inter-cell
			// overlap.
			hw = math.Min(hw, cellW*0.45)
			hh = math.Min(hh, cellH*0.45)
			centerX := (float64(c) + 0.5) * cellW
			centerY := (float64(r) + 0.5) * cellH
			boxes = append(boxes, boxAt(centerX, centerY, hw, hh, o))
		}
	}
	return boxes
}

func genPacked(rng *RNG, n int, o *Options) []box.Box {
	w := float64(o.World.Width)
	h := float64(o.World.Height)

	cols := int(math.Ceil(math.Sqrt(float64(n))))
	if cols < 1 {
		cols = 1
	}
	rows := int(math.Ceil(float64(n) / float64(cols)))
	cellW := w / float64(cols)
	cellH := h / float64(rows)

	boxes := make([]box.Box, 0, n)
	for r := 0; r < rows && len(boxes) < n; r++ {
		for c := 0; c < cols && len(boxes) < n; c++ {
			hw, hh := sampleSize(rng, o)
			// Enlarge so adjacent cells overlap.
			hw *= o.PackedOverlapMult
			hh *= o.PackedOverlapMult
			jitterX := rng.Uniform(-0.25, 0.25) * cellW
			jitterY := rng.Uniform(-0.25, 0.25) * cellH
			centerX := (float64(c)+0.5)*cellW + jitterX
			centerY := (float64(r)+0.5)*cellH + jitterY
			// Keep the full half-extent in-world where possible.
			centerX = clamp(centerX, hw, w-hw)
			centerY = clamp(centerY, hh, h-hh)
			boxes = append(boxes, boxAt(centerX, centerY, hw, hh, o))
		}
	}
	return boxes
}

// scaleToOccupancy rescales every box about its own center by a single
// linear factor so the total area approaches Occupancy*world area,
// clamping each half-extent so the box still fits inside the world.
func scaleToOccupancy(boxes []box.Box, o *Options) []box.Box {
	if o.Occupancy <= 0 {
		return boxes
	}
	w := float64(o.World.Width)
	h := float64(o.World.Height)
	worldArea := w * h
	if worldArea <= 0 {
		return boxes
	}

	var currentArea float64
	for _, b := range boxes {
		currentArea += float64(b.Area())
	}
	if currentArea <= 0 {
		return boxes
	}
	desiredArea := o.Occupancy * worldArea
	if desiredArea <= 0 {
		return boxes
	}

	scale := math.Sqrt(desiredArea / currentArea)
	if scale == 1.0 {
		return boxes
	}

	scaled := make([]box.Box, len(boxes))
	for i, b := range boxes {
		cx := (float64(b.MinX) + float64(b.MaxX)) * 0.5
		cy := (float64(b.MinY) + float64(b.MaxY)) * 0.5
		hw := (float64(b.MaxX) - float64(b.MinX)) * 0.5 * scale
		hh := (float64(b.MaxY) - float64(b.MinY)) * 0.5 * scale
		// A half-extent may not exceed the distance to the nearest
		// world edge on its axis.
		hw = math.Min(hw, math.Min(cx, w-cx))
		hh = math.Min(hh, math.Min(cy, h-cy))
		scaled[i] = box.Box{
			MinX: float32(cx - hw), MinY: float32(cy - hh),
			MaxX: float32(cx + hw), MaxY: float32(cy + hh),
		}
	}
	return scaled
}
