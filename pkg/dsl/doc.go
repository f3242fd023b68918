/*
Package dsl provides a fluent builder for constructing machine descriptions
in Go code.

It is the programmatic counterpart of machine files: useful for tests,
embedded machines and generated tables. Errors are collected while building
and reported together by Build.

Example usage:

	b := dsl.New("ends-with-b").
		States("q0", "q1").
		Symbols('a', 'b')

	b.On("q0", 'a').Go("q0", 'a', domain.Right)
	b.On("q0", 'b').Go("q1", 'b', domain.Right)
	b.On("q0", '#').Go("q0", '#', domain.Reject)
	b.On("q1", 'a').Go("q0", 'a', domain.Right)
	b.On("q1", 'b').Go("q1", 'b', domain.Right)
	b.On("q1", '#').Go("q1", '#', domain.Accept)

	m, err := b.Build()
*/
package dsl
