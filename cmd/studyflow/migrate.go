package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli"
	"github.com/studyflow/studyflow/internal/storage"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Apply any pending schema migrations to the database. Commands run
migrations automatically on startup; this is useful after upgrading to
verify the schema explicitly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// initStorage already migrates; reaching here means success.
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Database schema is up to date (version %d)", storage.ExpectedSchemaVersion)))
			return nil
		},
	}
}
