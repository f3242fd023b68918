/*
Package ports defines the driving ports (interfaces) of the Turing engine.

Adapters depend on these interfaces instead of the root package, so they can
be tested against fakes and reused with a differently configured engine.

# Key Interfaces

  - Engine: runs machines and encodes their transition tables.
*/
package ports
