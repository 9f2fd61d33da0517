package main

import (
	"fmt"
	"os"

	"github.com/san-kum/benchlab/internal/cli"
	"github.com/san-kum/benchlab/internal/config"
)

// main runs the reference N-body workload and prints the energy before and
// after it. "nbody plot" renders the drift chart instead.
func main() {
	w, err := config.Reference()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cli.NewNBodyCommand(w.NBody).Execute(); err != nil {
		os.Exit(1)
	}
}
