package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/encoding"
	"github.com/aretw0/turing/pkg/machine"
)

// Engine is the machine core as seen by the adapters (HTTP, MCP).
// Implementations keep no state between calls, so one value can serve
// concurrent requests.
type Engine interface {
	// Run executes m on input with the head at the zero-based index head.
	// A fault returns the partial result and a *domain.FaultError.
	Run(ctx context.Context, m *machine.Machine, input string, head int) (*domain.Result, error)

	// Encode returns the unary encoding of the transition table.
	Encode(m *machine.Machine) string

	// Codes returns the unary code assigned to every state, symbol and action.
	Codes(m *machine.Machine) encoding.Codes
}
