package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/planner-backend/internal/domain"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send scheduled notification emails",
}

func newNotifyRunCmd(use, short string, kind domain.EventType) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			sum, err := e.c.Digester.Run(cmd.Context(), kind)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d users, %d sent, %d failed, %d skipped\n",
				kind, sum.Users, sum.Sent, sum.Failed, sum.Skipped)
			if sum.Failed > 0 {
				return fmt.Errorf("%d %s emails failed", sum.Failed, kind)
			}
			return nil
		},
	}
}

func init() {
	notifyCmd.AddCommand(
		newNotifyRunCmd("digest", "Send the daily digest to subscribed users", domain.EventDigest),
		newNotifyRunCmd("report", "Send the weekly report to subscribed users", domain.EventReport),
	)
}
