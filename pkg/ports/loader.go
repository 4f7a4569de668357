package ports

import "github.com/aretw0/offhook/pkg/domain"

// DefinitionLoader defines how the machine retrieves its rule table.
// This allows the source (built-in table, file, memory) to be decoupled from the core.
type DefinitionLoader interface {
	// Load returns a definition owned by the caller.
	Load() (*domain.Definition, error)
}
