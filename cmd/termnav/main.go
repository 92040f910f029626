// Copyright (c) Axiom Studio AI (axiomstudio.ai)

package main

import (
	"errors"
	"fmt"
	"os"

	"termnav/internal/termnav"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	termnav.SetVersionInfo(version, commit, date)
	err := termnav.Execute()
	if err != nil && !errors.Is(err, termnav.ErrInterrupted) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(termnav.ExitCode(err))
}
