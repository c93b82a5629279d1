// Package testutil provides shared helpers for aabbkit tests:
// deterministic fixture datasets and reference implementations kept
// deliberately naive.
package testutil

import (
	"github.com/aabbkit/aabbkit/box"
)

// FixedDataset returns the canonical three-box fixture: boxes 0 and 1
// overlap on [1,2]x[1,2], box 2 is disjoint from both.
func FixedDataset() *box.Dataset {
	return &box.Dataset{
		Boxes: []box.Box{
			{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2},
			{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3},
			{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6},
		},
		World: box.World{Width: 10, Height: 10},
	}
}

// TouchingDataset returns two boxes sharing the line x=1.
func TouchingDataset() *box.Dataset {
	return &box.Dataset{
		Boxes: []box.Box{
			{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
			{MinX: 1, MinY: 0, MaxX: 2, MaxY: 1},
		},
		World: box.World{Width: 10, Height: 10},
	}
}

// ReferencePairs recomputes colliding pairs with the most literal
// nested loop possible, as an independent check on the oracle.
func ReferencePairs(d *box.Dataset) []box.Pair {
	var pairs []box.Pair
	for i := 0; i < len(d.Boxes); i++ {
		for j := i + 1; j < len(d.Boxes); j++ {
			a, b := d.Boxes[i], d.Boxes[j]
			xOverlap := a.MinX <= b.MaxX && b.MinX <= a.MaxX
			yOverlap := a.MinY <= b.MaxY && b.MinY <= a.MaxY
			if xOverlap && yOverlap {
				pairs = append(pairs, box.Pair{A: uint32(i), B: uint32(j)})
			}
		}
	}
	return pairs
}
