package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/offhook/pkg/domain"
)

// GraphOverlay contains dynamic session data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []domain.State
	CurrentState  *domain.State
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a definition.
// It applies semantic styling:
// - Initial: ((Circle))
// - Exit: [(Stop)]
// - Default: [Rectangle]
// Edges are labelled with "<index>: <trigger>" so the menu numbering is visible.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(def *domain.Definition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, s := range domain.AllStates {
		opener, closer := "[", "]"
		switch s {
		case def.Initial:
			opener, closer = "((", "))"
		case def.Exit:
			opener, closer = "[(", ")]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", s.Name(), opener, s.String(), closer))
	}

	for _, s := range domain.AllStates {
		for i, rule := range def.Table[s] {
			sb.WriteString(fmt.Sprintf("    %s -- \"%d: %s\" --> %s\n", s.Name(), i, rule.Trigger.String(), rule.Target.Name()))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.State]bool)
		for _, s := range overlay.VisitedStates {
			if !seen[s] && s.Valid() {
				seen[s] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", s.Name()))
			}
		}

		if overlay.CurrentState != nil {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", overlay.CurrentState.Name()))
		}
	}

	return sb.String()
}
