package turing

import (
	_ "embed"
)

// Version is the release version of the interpreter.
//
//go:embed VERSION
var Version string
