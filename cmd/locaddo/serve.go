package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/locaddo/locaddo/pkg/config"
	"github.com/locaddo/locaddo/pkg/server"
	"github.com/locaddo/locaddo/pkg/version"
)

// loadDotEnv loads .env from the working directory. A missing file is fine.
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func NewServeCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the waitlist HTTP server in the foreground",
		GroupID: gServer,
		Long: `Run the waitlist HTTP server in the foreground.

RESEND_API_KEY, LOCADDO_LISTEN and LOCADDO_MAIL_PROVIDER are read from the
environment and from a .env file in the working directory. Send SIGHUP to
reload the config file.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := loadDotEnv(); err != nil {
				return err
			}

			conf, err := config.NewFile(configPath)
			if err != nil {
				return err
			}
			if listen != "" {
				conf.SetListen(listen)
			}

			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("locaddo server starting")
			logrus.WithFields(conf.LogrusFields()).Info("config loaded")

			return server.Run(conf, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on, overrides the config file (e.g. :8080)")

	return cmd
}
