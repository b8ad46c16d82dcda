//go:build !cgo

package main

import (
	"fmt"
	"os"
)

func main() {
	exitOnError(run())
}

func run() error {
	sess, opts, cleanup, err := prepare(os.Args[1:])
	if err != nil || sess == nil {
		return err
	}
	defer cleanup()

	if !opts.tui {
		fmt.Fprintln(os.Stderr, "graphical client needs a cgo build; using the terminal client")
	}
	return runTerminal(sess)
}
