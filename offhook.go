package offhook

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/offhook/internal/runtime"
	"github.com/aretw0/offhook/pkg/adapters/file"
	"github.com/aretw0/offhook/pkg/adapters/memory"
	"github.com/aretw0/offhook/pkg/domain"
	"github.com/aretw0/offhook/pkg/dsl"
	"github.com/aretw0/offhook/pkg/ports"
	"github.com/google/uuid"
)

// Phone is the high-level entry point for the offhook library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Phone struct {
	machine   *runtime.Machine
	def       *domain.Definition
	loader    ports.DefinitionLoader
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	sessionID string
	rulesFile string
}

var _ ports.StateMachine = (*Phone)(nil)

// Option defines a functional option for configuring the Phone.
type Option func(*Phone)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Phone) {
		p.hooks = hooks
	}
}

// WithLoader injects a custom DefinitionLoader, bypassing the built-in table.
func WithLoader(l ports.DefinitionLoader) Option {
	return func(p *Phone) {
		p.loader = l
	}
}

// WithDefinition uses def instead of the built-in table.
func WithDefinition(def *domain.Definition) Option {
	return func(p *Phone) {
		p.def = def
	}
}

// WithRulesFile loads the rule table from a YAML or JSON file.
func WithRulesFile(path string) Option {
	return func(p *Phone) {
		p.rulesFile = path
	}
}

// WithLogger sets a custom structured logger for the phone.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Phone) {
		p.logger = logger
	}
}

// WithSessionID overrides the generated session identifier.
func WithSessionID(id string) Option {
	return func(p *Phone) {
		p.sessionID = id
	}
}

// DefaultDefinition returns a fresh copy of the built-in telephone table.
func DefaultDefinition() *domain.Definition {
	return dsl.Phone()
}

// New initializes a phone in its initial state.
// The rule table comes from, in order of precedence: WithLoader,
// WithRulesFile, WithDefinition, or the built-in table.
func New(opts ...Option) (*Phone, error) {
	p := &Phone{}
	for _, opt := range opts {
		opt(p)
	}

	loader, err := p.resolveLoader()
	if err != nil {
		return nil, err
	}

	def, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load rule table: %w", err)
	}
	p.def = def

	if p.sessionID == "" {
		p.sessionID = uuid.NewString()
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m, err := runtime.NewMachine(def,
		runtime.WithLogger(p.logger),
		runtime.WithLifecycleHooks(p.hooks),
		runtime.WithSessionID(p.sessionID),
	)
	if err != nil {
		return nil, err
	}
	p.machine = m
	return p, nil
}

func (p *Phone) resolveLoader() (ports.DefinitionLoader, error) {
	switch {
	case p.loader != nil:
		return p.loader, nil
	case p.rulesFile != "":
		return file.NewLoader(p.rulesFile), nil
	case p.def != nil:
		return memory.NewLoader(p.def)
	default:
		return memory.NewLoader(dsl.Phone())
	}
}

// CurrentState reports the state the phone is in.
func (p *Phone) CurrentState() domain.State {
	return p.machine.CurrentState()
}

// AvailableTransitions lists the rules leaving the current state, in menu order.
func (p *Phone) AvailableTransitions() []domain.Rule {
	return p.machine.AvailableTransitions()
}

// Apply fires the transition at index. Out-of-range indices return an
// error matching domain.ErrInvalidSelection and leave the state unchanged.
func (p *Phone) Apply(index int) (domain.State, error) {
	return p.machine.Apply(index)
}

// IsTerminal reports whether the phone has reached its exit state.
func (p *Phone) IsTerminal() bool {
	return p.machine.IsTerminal()
}

// Definition returns a copy of the rule table in use.
func (p *Phone) Definition() *domain.Definition {
	return p.def.Clone()
}

// SessionID returns the identifier attached to logs and events.
func (p *Phone) SessionID() string {
	return p.sessionID
}
