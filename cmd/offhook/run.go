package main

import (
	"github.com/aretw0/offhook/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Walk the phone state machine interactively",
	Long: `Starts a phone in its initial state, prints the available triggers and applies the
one you pick until the phone is back on the hook. Type exit or quit to leave early.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		headless, _ := cmd.Flags().GetBool("headless")
		jsonMode, _ := cmd.Flags().GetBool("json")
		sessionID, _ := cmd.Flags().GetString("session")

		return cli.Execute(cli.RunOptions{
			RulesPath:     cfg.Rules,
			SessionID:     sessionID,
			Headless:      headless,
			JSON:          jsonMode,
			Banner:        cfg.UI.Banner,
			Markdown:      cfg.UI.Markdown,
			Color:         cfg.UI.Color,
			MaxInputSize:  cfg.Input.MaxSize,
			MetricsOutput: cfg.Metrics.Output,
			Logger:        logger,
			In:            cmd.InOrStdin(),
			Out:           cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd.Flags())

	// 'run' is the default when no command is given
	rootCmd.RunE = runCmd.RunE
	addRunFlags(rootCmd.Flags())
}

func addRunFlags(fs *pflag.FlagSet) {
	fs.Bool("headless", false, "Run in headless mode (no banner, no header, plain text)")
	fs.Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	fs.String("session", "", "Session ID attached to logs (default: random UUID)")
	fs.Bool("banner", true, "Print the banner on start")
	fs.Bool("markdown", false, "Render prompts as Markdown")
	fs.Bool("color", true, "Colour state labels when writing to a terminal")
	fs.String("metrics-output", "", "Write Prometheus metrics to this .prom file on exit")
	fs.Int("max-input-size", 4096, "Maximum accepted input line, in bytes")
}
