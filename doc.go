/*
Package turing is an interpreter for single-tape, deterministic Turing machines.

A machine is described by a finite set of states, an input alphabet (to which
the blank symbol '#' is always appended) and a total transition table mapping
every (state, symbol) pair to a (state, symbol, action) triple. The engine runs
the machine against an input string, reporting every configuration until the
machine accepts, rejects or faults. The encoder serializes the same
description into a single unary/binary bitstring.

# Architecture

  - pkg/registry: validated, ordered state and symbol lists.
  - pkg/machine: transition table and the immutable Machine description.
  - pkg/encoding: the bitstring encoding and its structural decoder.
  - internal/runtime: the execution engine (tape, head, halting).
  - pkg/dsl, pkg/schema, pkg/adapters/machinefile: ways to build machines.
  - pkg/runner: the interactive text protocol.

# Usage

	b := dsl.New("accept-a").States("q0").Symbols('a')
	b.On("q0", 'a').Accept('a')
	b.On("q0", '#').Reject('#')
	m, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	eng := turing.New()
	fmt.Println(eng.Encode(m))

	res, err := eng.Run(context.Background(), m, "a", 0)
	if err != nil {
		log.Fatal(err) // execution fault, res still holds the trace
	}
	for _, c := range res.Trace {
		fmt.Println(c)
	}
	fmt.Println(res.Verdict)
*/
package turing
