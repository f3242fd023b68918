// Package encoding serializes a machine description into a single bitstring,
// the classical "encode a Turing machine as a number" construction.
//
// The i-th state and the i-th symbol (0-based, registration order) are coded
// in unary as i+1 ones. Actions have fixed codes independent of the table:
// Right=1, Left=11, Accept=111, Reject=1111. Every table cell, in row-major
// order, becomes
//
//	code(state) 0 code(read) 0 code(to) 0 code(write) 0 code(action)
//
// and cells are joined with 00. Because codes are unary, the single 0 and the
// double 00 delimiters are unambiguous and Split recovers the cell structure.
package encoding
