package main

import (
	"fmt"
	"io"

	"github.com/aretw0/offhook"
	"github.com/aretw0/offhook/internal/validator"
	"github.com/aretw0/offhook/pkg/adapters/file"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a rule table for consistency",
	Long: `Loads a rule table (the argument, --rules, or the built-in phone) and reports unknown
states or triggers, unreachable states, dead ends and exits that can be left.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Rules
		if len(args) > 0 {
			path = args[0]
		}
		if err := runValidate(cmd.OutOrStdout(), path); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(w io.Writer, path string) error {
	if path == "" {
		if err := validator.ValidateDefinition(offhook.DefaultDefinition()); err != nil {
			return err
		}
		fmt.Fprintln(w, "Built-in rule table is valid! ✅")
		return nil
	}

	if _, err := file.NewLoader(path).Load(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s is valid! ✅\n", path)
	return nil
}
