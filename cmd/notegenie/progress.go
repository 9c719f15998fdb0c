package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/artifact"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/progress"
)

func newProgressCommand() *cobra.Command {
	var userID string

	command := &cobra.Command{
		Use:   "progress",
		Short: "Show completed sessions and the running average score",
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

			service := progress.NewService(artifact.NewRepository(db), progress.NewRepository(db))
			agg, err := service.Overview(cmd.Context(), userID)
			if err != nil {
				return err
			}

			if agg.TotalSessions == 0 {
				fmt.Println("No completed sessions yet.")
				return nil
			}

			fmt.Printf("Sessions completed: %d\n", agg.TotalSessions)
			fmt.Printf("Average score: %.1f%%\n", agg.AverageScore)
			fmt.Printf("Last active: %s\n", agg.LastActiveAt.Format("2006-01-02 15:04"))
			return nil
		},
	}

	command.Flags().StringVar(&userID, "user", "", "user id to show progress for")
	_ = command.MarkFlagRequired("user")

	return command
}
