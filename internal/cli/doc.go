// Package cli builds the cobra commands behind every benchmark binary.
//
// Each constructor takes its workload from the config package, so the
// binaries run the fixed reference workloads while tests drive the same
// commands with the smoke preset.
package cli
