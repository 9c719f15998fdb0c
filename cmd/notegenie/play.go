package main

import (
	"github.com/spf13/cobra"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/artifact"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/cli"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/progress"
)

func newPlayCommand() *cobra.Command {
	var userID string

	command := &cobra.Command{
		Use:   "play <quiz id>",
		Short: "Answer a stored quiz interactively and record the session",
		Args:  cobra.ExactArgs(1),
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

			artifacts := artifact.NewRepository(db)
			quiz, err := artifacts.GetQuiz(cmd.Context(), args[0], userID)
			if err != nil {
				return err
			}

			completer := progress.NewService(artifacts, progress.NewRepository(db))
			session := cli.NewQuizSessionCLI(quiz, userID, completer)
			return session.Run(cmd.Context())
		},
	}

	command.Flags().StringVar(&userID, "user", "", "user id the quiz belongs to")
	_ = command.MarkFlagRequired("user")

	return command
}
