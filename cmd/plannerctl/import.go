package main

import (
	"fmt"

	"github.com/spf13/cobra"

	authctx "github.com/heartmarshall/planner-backend/internal/auth"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import activities",
}

var (
	importAs      string
	importConfirm bool
)

var importInitialCmd = &cobra.Command{
	Use:   "initial",
	Short: "Load the built-in activity catalog for a user",
	Long: `Loads the built-in catalog into the account given by --as.

On an empty database any user may run it. Once activities exist only an
admin may, and only with --confirm; the admin's own activities are
soft-deleted and replaced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		user, err := e.c.Users.GetByEmail(cmd.Context(), importAs)
		if err != nil {
			return fmt.Errorf("look up %s: %w", importAs, err)
		}
		ctx := authctx.WithActor(cmd.Context(), user.Actor())

		res, err := e.c.Importer.ImportInitial(ctx, importConfirm)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d activities for %s (replaced %d)\n",
			res.Imported, user.Email, res.Replaced)
		return nil
	},
}

func init() {
	f := importInitialCmd.Flags()
	f.StringVar(&importAs, "as", "", "email of the account that will own the activities (required)")
	f.BoolVar(&importConfirm, "confirm", false, "replace existing activities (admin only)")
	_ = importInitialCmd.MarkFlagRequired("as")

	importCmd.AddCommand(importInitialCmd)
}
