/*
Package domain contains the core domain models of the turing interpreter.

It defines the vocabulary shared by the registry, the transition table, the
encoder and the execution engine. This package is kept pure and free of
external dependencies like I/O, following Hexagonal Architecture principles.

# Key Entities

  - StateID / SymbolID: stable indices assigned in registration order.
  - Action: the closed set of moves a transition can make (Right, Left, Accept, Reject).
  - Transition: the (state, symbol, action) triple stored in one table cell.
  - Configuration: a printable snapshot of the machine before a step.
  - Result: the outcome of one execution run (trace, verdict or fault).
*/
package domain
