package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/offhook/pkg/domain"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rule table",
	Long:  `Lists every state with its numbered triggers, in the order they are offered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRules(cmd.OutOrStdout(), cfg.Rules, logger)
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(w io.Writer, rulesPath string, log *slog.Logger) error {
	phone, err := newPhone(rulesPath, log)
	if err != nil {
		return err
	}
	def := phone.Definition()

	for _, s := range domain.AllStates {
		marker := ""
		switch s {
		case def.Initial:
			marker = " [initial]"
		case def.Exit:
			marker = " [exit]"
		}
		fmt.Fprintf(w, "%s (%s)%s\n", s, s.Name(), marker)
		for i, rule := range def.Table.Rules(s) {
			fmt.Fprintf(w, "  %d. %s -> %s\n", i, rule.Trigger, rule.Target)
		}
	}
	return nil
}
