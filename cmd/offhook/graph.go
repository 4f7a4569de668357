package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/aretw0/offhook"
	"github.com/aretw0/offhook/internal/presentation/graph"
	"github.com/aretw0/offhook/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the rule table visualization",
	Long: `Outputs a Mermaid diagram (graph TD) or a Graphviz DOT digraph of the rule table.
With --path, the triggers are replayed from the initial state and the visited and
current states are highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		path, _ := cmd.Flags().GetStringSlice("path")
		return runGraph(cmd.OutOrStdout(), cfg.Rules, format, path, logger)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("format", "f", "mermaid", "Output format (mermaid, dot)")
	graphCmd.Flags().StringSlice("path", nil, "Comma-separated triggers to replay, e.g. CallDialed,CallConnected")
}

func runGraph(w io.Writer, rulesPath, format string, path []string, log *slog.Logger) error {
	phone, err := newPhone(rulesPath, log)
	if err != nil {
		return err
	}
	def := phone.Definition()

	var overlay *graph.GraphOverlay
	if len(path) > 0 {
		visited, err := replay(phone, path)
		if err != nil {
			return err
		}
		current := phone.CurrentState()
		overlay = &graph.GraphOverlay{VisitedStates: visited, CurrentState: &current}
	}

	switch strings.ToLower(format) {
	case "mermaid", "":
		_, err = fmt.Fprint(w, graph.GenerateMermaid(def, overlay))
	case "dot":
		var current *domain.State
		if overlay != nil {
			current = overlay.CurrentState
		}
		_, err = fmt.Fprint(w, graph.GenerateDOT(def, current))
	default:
		return fmt.Errorf("unknown format %q (want mermaid or dot)", format)
	}
	return err
}

// replay applies each trigger in order and returns every state visited,
// starting with the initial one.
func replay(phone *offhook.Phone, path []string) ([]domain.State, error) {
	visited := []domain.State{phone.CurrentState()}
	for _, name := range path {
		trigger, err := domain.ParseTrigger(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		idx := slices.IndexFunc(phone.AvailableTransitions(), func(r domain.Rule) bool {
			return r.Trigger == trigger
		})
		if idx < 0 {
			return nil, fmt.Errorf("trigger %s is not available while %s", trigger.Name(), phone.CurrentState())
		}
		if _, err := phone.Apply(idx); err != nil {
			return nil, err
		}
		visited = append(visited, phone.CurrentState())
	}
	return visited, nil
}
