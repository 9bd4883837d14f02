package main

import (
	"os"

	"github.com/go-tox/toxsettings/cmd"
	"github.com/go-tox/toxsettings/lib/util"
	"github.com/go-tox/toxsettings/lib/util/signals"
)

func main() {
	// A termination signal first flushes pending settings writes, then tears
	// down whatever stores the commands left open.
	signals.RegisterInterruptHandler(util.CloseAll)
	go signals.Handle()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
