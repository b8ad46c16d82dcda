//go:build cgo

package main

import (
	"os"

	"github.com/appengine-ltd/short-order/internal/gui"
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

	if opts.tui {
		return runTerminal(sess)
	}
	return gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Session:   sess,
	}).Run()
}
