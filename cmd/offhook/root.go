package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/offhook"
	"github.com/aretw0/offhook/internal/config"
	"github.com/aretw0/offhook/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     = &config.Config{}
	logger  = logging.NewNop()
)

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"rules":          "rules",
	"log-level":      "log.level",
	"log-format":     "log.format",
	"banner":         "ui.banner",
	"markdown":       "ui.markdown",
	"color":          "ui.color",
	"metrics-output": "metrics.output",
	"max-input-size": "input.max_size",
}

var rootCmd = &cobra.Command{
	Use:   "offhook",
	Short: "offhook drives a telephone call state machine",
	Long: `offhook models a phone call (off the hook, connecting, connected, on hold, on the hook)
as a finite state machine and lets you walk it from the console.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (YAML)")
	rootCmd.PersistentFlags().String("rules", "", "Rule table file (YAML or JSON); the built-in phone is used when empty")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
}

// initConfig merges defaults, the config file, OFFHOOK_* variables and flags.
func initConfig(cmd *cobra.Command) error {
	v := config.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	c, err := config.Decode(v)
	if err != nil {
		return err
	}
	cfg = c

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger = logging.NewWithOptions(logging.Options{Level: level, Format: cfg.Log.Format})
	return nil
}

// newPhone builds a phone from rulesPath, or the built-in table when empty.
func newPhone(rulesPath string, log *slog.Logger) (*offhook.Phone, error) {
	opts := []offhook.Option{offhook.WithLogger(log)}
	if rulesPath != "" {
		opts = append(opts, offhook.WithRulesFile(rulesPath))
	}
	return offhook.New(opts...)
}
