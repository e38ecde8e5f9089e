package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/planner-backend/internal/adapter/postgres/emaillog"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove old operational records",
}

var emailLogRetention time.Duration

var cleanupEmailLogsCmd = &cobra.Command{
	Use:   "email-logs",
	Short: "Delete email delivery log entries older than --older-than",
	RunE: func(cmd *cobra.Command, args []string) error {
		cutoff, err := retentionCutoff(time.Now().UTC(), emailLogRetention)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		n, err := emaillog.New(e.pool).DeleteBefore(cmd.Context(), cutoff)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d email log entries before %s\n", n, cutoff.Format(time.RFC3339))
		return nil
	},
}

func retentionCutoff(now time.Time, keep time.Duration) (time.Time, error) {
	if keep < 24*time.Hour {
		return time.Time{}, errors.New("--older-than must be at least 24h")
	}
	return now.Add(-keep), nil
}

func init() {
	cleanupEmailLogsCmd.Flags().DurationVar(&emailLogRetention, "older-than", 90*24*time.Hour, "keep entries newer than this")
	cleanupCmd.AddCommand(cleanupEmailLogsCmd)
}
