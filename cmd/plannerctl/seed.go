package main

import (
	"fmt"

	"github.com/spf13/cobra"

	authsvc "github.com/heartmarshall/planner-backend/internal/service/auth"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed bootstrap data",
}

var seedAdminInput authsvc.EnsureAdminInput

var seedAdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Create the admin account, or promote an existing user",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		user, created, err := e.c.Auth.EnsureAdmin(cmd.Context(), seedAdminInput)
		if err != nil {
			return err
		}

		verb := "ready"
		if created {
			verb = "created"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "admin %s: %s (%s)\n", verb, user.Email, user.ID)
		return nil
	},
}

func init() {
	f := seedAdminCmd.Flags()
	f.StringVar(&seedAdminInput.Email, "email", "", "admin email (required)")
	f.StringVar(&seedAdminInput.Password, "password", "", "password for a new account")
	f.StringVar(&seedAdminInput.Name, "name", "Administrador", "display name for a new account")
	_ = seedAdminCmd.MarkFlagRequired("email")

	seedCmd.AddCommand(seedAdminCmd)
}
