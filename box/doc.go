// Package box defines the core data model shared by the generator, the
// codecs, the oracle and the judge: axis-aligned boxes, the world they
// live in, datasets and colliding index pairs.
//
// A box's identity is its position in the dataset; there is no separate
// ID field. All geometry is float32 to match the on-disk formats.
package box
