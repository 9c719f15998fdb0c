package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/database"
	"github.com/CJSBLACKPEARL/quizify-note-genie/schemas"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.Migrate(cmd.Context(), db, schemas.Migrations); err != nil {
				return err
			}
			fmt.Println("Migrations applied.")
			return nil
		},
	}
}
