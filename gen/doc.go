// Package gen produces synthetic AABB datasets under controllable
// spatial and size distributions, for benchmarking broad-phase
// collision algorithms against a known ground truth.
//
// Four spatial models are supported (uniform, clustered, grid, packed)
// and two size models (uniform, skewed). An optional occupancy target
// rescales every box about its own center after generation so the
// summed box area approaches a chosen fraction of the world area.
//
// The generator never touches the process-wide random source: callers
// pass an owned RNG, so parallel generation of many testcases cannot
// race or leak seed state, and a fixed seed reproduces the dataset
// bit-identically.
package gen
