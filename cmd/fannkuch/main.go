package main

import (
	"fmt"
	"os"

	"github.com/san-kum/benchlab/internal/cli"
	"github.com/san-kum/benchlab/internal/config"
)

func main() {
	w, err := config.Reference()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cli.NewFannkuchCommand(w.Fannkuch).Execute(); err != nil {
		os.Exit(1)
	}
}
