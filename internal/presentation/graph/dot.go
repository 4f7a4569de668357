package graph

import (
	"bytes"
	"fmt"

	"github.com/aretw0/offhook/pkg/domain"
)

// GenerateDOT produces Graphviz DOT source for the definition.
// The current state, if given, is filled.
func GenerateDOT(def *domain.Definition, current *domain.State) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph Phone {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	for _, s := range domain.AllStates {
		attrs := fmt.Sprintf(`label="%s"`, s.String())
		switch s {
		case def.Initial:
			attrs += ", shape=ellipse"
		case def.Exit:
			attrs += ", shape=doublecircle"
		}
		if current != nil && *current == s {
			attrs += `, style="rounded,filled", fillcolor="#ffeb3b"`
		}
		buf.WriteString(fmt.Sprintf("  %q [%s];\n", s.Name(), attrs))
	}

	for _, s := range domain.AllStates {
		for i, rule := range def.Table[s] {
			buf.WriteString(fmt.Sprintf("  %q -> %q [label=\"%d: %s\"];\n", s.Name(), rule.Target.Name(), i, rule.Trigger.String()))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
