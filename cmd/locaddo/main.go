package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/locaddo/locaddo/pkg/client"
)

var (
	logLevel   = "info"
	configPath = "locaddo.json"
	jsonOutput = false
)

var (
	gCalculators  = "Calculators:"
	gWaitlist     = "Waitlist:"
	gServer       = "Server:"
	commandGroups = []string{
		gCalculators,
		gWaitlist,
		gServer,
	}
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	if errors.Is(err, client.ErrServerNotRunning) {
		fmt.Fprintln(os.Stderr, "\nError: locaddo server is not running")
		fmt.Fprintln(os.Stderr, "Start it with 'locaddo serve' or point --server at a running instance.")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locaddo",
		Short: "locaddo runs health and study calculators and the Locaddo waitlist service",
		Long: `locaddo runs health and study calculators and the Locaddo waitlist service.

Calculators run locally and print their result. The waitlist commands talk
to a server started with 'locaddo serve'.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "config file path (.json, .yaml or .yml)")
	globalFlags.BoolVar(&jsonOutput, "json", false, "print results as JSON")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewVersionCommand(),
		NewBMICommand(),
		NewReverseBMICommand(),
		NewWHRCommand(),
		NewBPCommand(),
		NewFrameCommand(),
		NewAPChemCommand(),
		NewTimeFromNowCommand(),
		NewWaitlistCommand(),
		NewServeCommand(),
		NewConfigCommand(),
	)

	return cmd
}
