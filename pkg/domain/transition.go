package domain

// StateID is the index of a registered state. State 0 is the initial state.
type StateID int

// SymbolID is the index of a registered symbol. The blank is always last.
type SymbolID int

// Transition is the content of one table cell:
// (from, read) -> (To, Write, Action).
type Transition struct {
	To     StateID  `json:"to"`
	Write  SymbolID `json:"write"`
	Action Action   `json:"action"`
}
