package main

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/locaddo/locaddo/pkg/client"
)

var serverAddr = "http://localhost:8080"

func NewWaitlistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "waitlist",
		Short:   "Talk to a running waitlist server",
		GroupID: gWaitlist,
	}

	cmd.PersistentFlags().StringVar(&serverAddr, "server", serverAddr, "waitlist server address")

	cmd.AddCommand(
		newWaitlistJoinCommand(),
		newWaitlistPingCommand(),
	)

	return cmd
}

func newWaitlistJoinCommand() *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join the waitlist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			resp, err := client.NewClient(serverAddr).JoinWaitlist(ctx, email, name)
			if resp == nil {
				return err
			}
			if resp.Error != "" {
				logrus.Debugf("server error: %s", resp.Error)
			}
			if jsonOutput {
				if perr := printJSON(cmd, resp); perr != nil {
					return perr
				}
			}
			if err != nil {
				// cobra prints the returned error; keep it to the server's message.
				logrus.Debugf("join failed: %v", err)
				return errors.New(resp.Message)
			}
			if !jsonOutput {
				cmd.Println(bold("%s", resp.Message))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&email, "email", "", "email address to sign up")
	f.StringVar(&name, "name", "", "name to greet in the welcome email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newWaitlistPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the waitlist API is up",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			c := client.NewClient(serverAddr)
			sr, err := c.Ping(ctx)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd, sr)
			}

			cmd.Printf("%s (%s)\n", bold("%s", sr.Message), sr.Timestamp)
			if v, err := c.Version(ctx); err == nil {
				cmd.Printf("  Server version: %s\n", bold("%s", v))
			}
			return nil
		},
	}
}
