package file

import (
	"github.com/aretw0/offhook/internal/compiler"
	"github.com/aretw0/offhook/pkg/domain"
)

// Loader implements ports.DefinitionLoader by parsing a YAML or JSON rule table on disk.
// The file is read on every Load call.
type Loader struct {
	path   string
	parser *compiler.Parser
}

// NewLoader creates a loader for path. The format is chosen from the extension.
func NewLoader(path string) *Loader {
	return &Loader{path: path, parser: compiler.NewParser()}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.path
}

func (l *Loader) Load() (*domain.Definition, error) {
	return l.parser.ParseFile(l.path)
}
