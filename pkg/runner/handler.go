package runner

import (
	"context"

	"github.com/aretw0/offhook/pkg/domain"
)

// Prompt is what the runner presents before each selection.
type Prompt struct {
	State   domain.State  `json:"state"`
	Options []domain.Rule `json:"options"`
}

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents the current state and the numbered options.
	Output(ctx context.Context, prompt Prompt) error

	// Input reads a response from the user.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message to the user (e.g. a rejected selection).
	// This is distinct from prompt rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// StateFormatter turns a state into its display label (e.g. coloured).
type StateFormatter func(domain.State) string
