package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/artifact"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/export"
)

func newExportCommand() *cobra.Command {
	exportCommand := &cobra.Command{
		Use:   "export",
		Short: "Export a stored artifact to markdown, PDF or YAML",
	}

	exportCommand.AddCommand(newExportQuizCommand())
	exportCommand.AddCommand(newExportFlashcardsCommand())

	return exportCommand
}

func newExportQuizCommand() *cobra.Command {
	var (
		userID     string
		formatName string
	)

	command := &cobra.Command{
		Use:   "quiz <quiz id>",
		Short: "Export a stored quiz with its answer key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			format, err := export.ParseFormat(formatName)
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

			quiz, err := artifact.NewRepository(db).GetQuiz(cmd.Context(), args[0], userID)
			if err != nil {
				return err
			}

			path, err := export.WriteQuiz(cfg.Outputs.ExportDirectory, quiz, format)
			if err != nil {
				return err
			}
			fmt.Printf("Exported to %s\n", path)
			return nil
		},
	}

	command.Flags().StringVar(&userID, "user", "", "user id the quiz belongs to")
	command.Flags().StringVar(&formatName, "format", "markdown", "output format (markdown, pdf, yaml)")
	_ = command.MarkFlagRequired("user")

	return command
}

func newExportFlashcardsCommand() *cobra.Command {
	var (
		userID     string
		formatName string
	)

	command := &cobra.Command{
		Use:   "flashcards <set id>",
		Short: "Export a stored flashcard set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			format, err := export.ParseFormat(formatName)
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

			set, err := artifact.NewRepository(db).GetFlashcardSet(cmd.Context(), args[0], userID)
			if err != nil {
				return err
			}

			path, err := export.WriteFlashcardSet(cfg.Outputs.ExportDirectory, set, format)
			if err != nil {
				return err
			}
			fmt.Printf("Exported to %s\n", path)
			return nil
		},
	}

	command.Flags().StringVar(&userID, "user", "", "user id the set belongs to")
	command.Flags().StringVar(&formatName, "format", "markdown", "output format (markdown, pdf, yaml)")
	_ = command.MarkFlagRequired("user")

	return command
}
