package domain

const (
	// Blank is the reserved blank symbol. It is appended last to every
	// alphabet and fills the tape when the head moves past the written end.
	Blank rune = '#'

	// Sentinel marks the left end of the tape (position -1). It is never
	// written and never read as data.
	Sentinel rune = '<'

	// DefaultMaxTape is the default tape capacity. The head index must stay
	// strictly below it.
	DefaultMaxTape = 1000
)
