//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"unicorn/app"
	"unicorn/hal"
	"unicorn/internal/buildinfo"
	"unicorn/internal/config"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "unicorn",
	Short:         "Unicorn runs the LED matrix menu and effects in a desktop window",
	Long:          "Unicorn runs the appliance core against a simulated 32x32 panel.\nKeys 1-4 (or A-D) are the menu switches, =/- adjust brightness, Z toggles sleep, Escape quits.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return hal.RunWindow(runner(cfg), hal.WindowConfig{Scale: cfg.Display.Scale})
	},
}

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run without a window, optionally replaying switch presses",
	Example: `  unicorn headless --duration 10s --press 1s=B --press 2s=C --press 6s=SLEEP
  unicorn headless --press 500ms=LUX++2s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		duration, _ := cmd.Flags().GetDuration("duration")
		specs, _ := cmd.Flags().GetStringArray("press")

		hc := hal.HeadlessConfig{Duration: duration, Output: cmd.OutOrStdout()}
		for _, s := range specs {
			p, err := hal.ParsePress(s)
			if err != nil {
				return err
			}
			hc.Presses = append(hc.Presses, p)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, runner(cfg), hc)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "unicorn %s (commit %s, built %s)\n", buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults apply when empty)")
	headlessCmd.Flags().Duration("duration", 0, "Stop after this long (0 = until interrupted)")
	headlessCmd.Flags().StringArray("press", nil, "Scheduled press <at>=<button>[+<hold>], repeatable")
	rootCmd.AddCommand(headlessCmd, menuCmd, versionCmd)
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func runner(cfg *config.Config) hal.RunFunc {
	return func(ctx context.Context, h hal.HAL) error {
		return app.Run(ctx, h, cfg)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
