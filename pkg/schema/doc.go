// Package schema defines the serialized form of a machine description and
// validates it before it reaches the registry and the transition table.
//
// A Document is what machine files (YAML), the HTTP API (JSON) and the MCP
// tools exchange:
//
//	name: flip
//	states: [q0]
//	symbols: [a, b]
//	start: { input: "ab", head: 1 }
//	transitions:
//	  - { from: q0, read: a, to: q0, write: b, action: R }
//	  - { from: q0, read: b, to: q0, write: a, action: R }
//	  - { from: q0, read: "#", to: q0, write: "#", action: Y }
//
// Raw maps are decoded with mapstructure in weakly typed mode, so numeric
// symbols may be written unquoted. The blank symbol must be quoted in YAML
// because '#' starts a comment.
//
// Structural rules (required fields, one-character symbols, positive head)
// are checked with go-playground/validator. Semantic rules (alphanumeric
// names, known targets, table completeness) are left to the registry and
// machine packages.
package schema
