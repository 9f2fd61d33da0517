// Package contract holds kernels that measure the cost of runtime safety
// checks: bounds-checked array reads and optional-value propagation.
package contract
