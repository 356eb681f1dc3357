// Package dlx implements Knuth's Algorithm X over a sparse toroidal
// doubly-linked matrix (Dancing Links), the kernel used to solve exact
// cover problems: given a universe of named elements and a family of named
// subsets, find every selection of subsets whose disjoint union is exactly
// the universe.
//
// Build a universe with NewUniverse, add subsets with DefineSubset, and run
// Search. Solutions are reported through a SolutionSink registered with
// SetSolutionSink, or silently counted if none is registered.
package dlx
