// Package compute provides the CPU-bound benchmark kernels that sit beside
// the N-body simulation:
//
//   - [Fibonacci]: naive doubly recursive Fibonacci
//   - [BinaryTrees]: allocate, check and release perfect binary trees
//   - [SpectralNorm]: power iteration on an infinite matrix
//   - [Mandelbrot]: escape-time membership count
//   - [Fannkuch]: pancake-flip permutation search
//
// Every kernel is single-threaded and deterministic; the return values are
// what the corresponding command prints.
//
// # Tree ownership
//
// Binary trees live in an [Arena] of index-linked nodes. A parent owns its two
// children and [Arena.Free] releases a tree exactly once in post order, so a
// run can assert that no node leaks:
//
//	a := compute.NewArena(0)
//	root := a.MakeTree(10)
//	_ = a.Check(root)
//	a.Free(root)
//	// a.Live() == 0
package compute
