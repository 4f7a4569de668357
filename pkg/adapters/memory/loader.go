package memory

import (
	"fmt"

	"github.com/aretw0/offhook/internal/validator"
	"github.com/aretw0/offhook/pkg/domain"
)

// Loader implements ports.DefinitionLoader from a definition held in memory.
type Loader struct {
	def *domain.Definition
}

// NewLoader validates def and keeps a private copy of it.
func NewLoader(def *domain.Definition) (*Loader, error) {
	if err := validator.ValidateDefinition(def); err != nil {
		return nil, fmt.Errorf("memory loader: %w", err)
	}
	return &Loader{def: def.Clone()}, nil
}

// Load returns a fresh copy so callers can never alter the stored table.
func (l *Loader) Load() (*domain.Definition, error) {
	return l.def.Clone(), nil
}
