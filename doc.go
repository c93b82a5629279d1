// Package aabbkit generates synthetic AABB collision testcases and
// judges candidate broad-phase algorithms against brute-force ground
// truth.
//
// The subpackages are the building blocks: gen produces datasets under
// controllable distributions, codec serializes them (binary SoA and
// text forms), oracle computes the exact colliding pairs, and judge
// compares a candidate's pair output to the oracle's as an
// order-insensitive multiset.
//
// This package ties them together: GenerateTestcase runs the full
// generate-encode-oracle pipeline for one testcase, and GenerateSuite
// runs many in parallel, each with its own seeded RNG, optionally
// publishing the artifacts to a blobstore.Store.
package aabbkit
