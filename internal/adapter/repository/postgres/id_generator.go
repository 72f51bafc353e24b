package postgres

import (
	"github.com/oklog/ulid/v2"

	"github.com/finvoy/ledgerbook/internal/usecase"
)

// ULIDGenerator issues lexicographically sortable ids for accounts, entries
// and lines.
type ULIDGenerator struct{}

var _ usecase.IDGenerator = (*ULIDGenerator)(nil)

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
