package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/locaddo/locaddo/pkg/config"
	"github.com/locaddo/locaddo/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Inspect or create the server config file",
		GroupID: gServer,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective config, defaults included",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := loadDotEnv(); err != nil {
					return err
				}
				conf, err := config.NewFile(configPath)
				if err != nil {
					return err
				}
				raw, err := config.NewRawFileConfigFromConfig(conf)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(raw)
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a config file with every default filled in",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := os.Stat(configPath); err == nil {
					return fmt.Errorf("%s already exists", configPath)
				}
				raw, err := config.NewRawFileConfigFromConfig(config.NewFileFromConfig(nil, ""))
				if err != nil {
					return err
				}
				if err := config.NewFileFromConfig(raw, configPath).Save(); err != nil {
					return err
				}
				cmd.Printf("wrote %s\n", configPath)
				return nil
			},
		},
	)

	return cmd
}
