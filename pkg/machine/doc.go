// Package machine holds the transition table and the immutable machine
// description built from a finalized registry and a complete table.
//
// A Table is filled cell by cell, usually while prompting the user, and is
// allowed to be partial. Build checks completeness and returns a Machine that
// the encoder and the execution engine read concurrently without locking.
package machine
