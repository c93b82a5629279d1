package box

import "fmt"

// Box is a closed axis-aligned rectangle given by its min and max corners.
// Invariant: MinX <= MaxX and MinY <= MaxY.
type Box struct {
	MinX float32
	MinY float32
	MaxX float32
	MaxY float32
}

// Intersects reports whether b and o overlap, treating both intervals as
// closed: boxes that merely touch on an edge or corner count as
// intersecting.
func (b Box) Intersects(o Box) bool {
	return !(b.MaxX < o.MinX || o.MaxX < b.MinX || b.MaxY < o.MinY || o.MaxY < b.MinY)
}

// Area returns the box area.
func (b Box) Area() float32 {
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// Center returns the box center.
func (b Box) Center() (cx, cy float32) {
	return (b.MinX + b.MaxX) * 0.5, (b.MinY + b.MaxY) * 0.5
}

// HalfExtents returns the half-width and half-height.
func (b Box) HalfExtents() (hw, hh float32) {
	return (b.MaxX - b.MinX) * 0.5, (b.MaxY - b.MinY) * 0.5
}

// World is the coordinate domain boxes are generated in. It is carried
// as metadata by the binary format and has no effect on collision
// semantics.
type World struct {
	Width  float32
	Height float32
}

// Area returns the world area.
func (w World) Area() float32 {
	return w.Width * w.Height
}

// Dataset is an ordered collection of boxes inside a world. A box's
// 0-based position is its identity; consumers must not reorder Boxes.
type Dataset struct {
	Boxes []Box
	World World
}

// Len returns the number of boxes.
func (d *Dataset) Len() int { return len(d.Boxes) }

// Box returns the i-th box.
func (d *Dataset) Box(i int) Box { return d.Boxes[i] }

// Occupancy returns the ratio of total box area to world area.
// It returns 0 for a degenerate world.
func (d *Dataset) Occupancy() float32 {
	wa := d.World.Area()
	if wa <= 0 {
		return 0
	}
	var total float32
	for _, b := range d.Boxes {
		total += b.Area()
	}
	return total / wa
}

// Pair is an unordered pair of dataset indices. The oracle always emits
// A < B; the judge normalizes before comparing, so either order is
// accepted on input.
type Pair struct {
	A uint32
	B uint32
}

// String returns the pair in the CSV row form "a,b".
func (p Pair) String() string {
	return fmt.Sprintf("%d,%d", p.A, p.B)
}

// Canonical returns the pair with its endpoints sorted ascending, so
// (a,b) and (b,a) map to the same value.
func (p Pair) Canonical() Pair {
	if p.B < p.A {
		return Pair{A: p.B, B: p.A}
	}
	return p
}
