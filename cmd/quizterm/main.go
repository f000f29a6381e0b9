package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quizterm/internal/bootstrap"
	"quizterm/internal/modules/quiz/domain"
	"quizterm/internal/platform/config"
	"quizterm/internal/platform/logging"
	"quizterm/internal/platform/termui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	questionsPath string
	uiMode        string
	logLevel      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "quizterm",
		Short:         "Terminal multiple-choice quiz",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.questionsPath, "questions", config.DefaultQuestionsPath, "questions file (JSON array, or YAML with .yaml/.yml)")
	root.PersistentFlags().StringVar(&flags.uiMode, "ui", config.DefaultUIMode, "front-end: plain|tui|auto")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", config.DefaultLogLevel, "log level: debug|info|warn|error")

	root.AddCommand(newPlayCmd(flags))
	root.AddCommand(newCheckCmd(flags))
	return root
}

func loadApp(cmd *cobra.Command, flags *rootFlags) (*bootstrap.App, error) {
	cfg, err := config.New(flags.questionsPath, flags.uiMode, flags.logLevel)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logger)
}

func newPlayCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, flags)
		},
	}
}

func runPlay(cmd *cobra.Command, flags *rootFlags) error {
	app, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}
	decision, err := termui.Resolve(app.Config.UIMode, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if decision.Warning != "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), decision.Warning)
	}
	ctx := context.Background()
	if decision.UseTUI {
		_, err = bootstrap.RunTUI(ctx, app, cmd.InOrStdin(), cmd.OutOrStdout())
	} else {
		_, err = bootstrap.RunPlain(ctx, app, cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return err
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the questions file without playing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			out, err := app.QuizCLI.Check(context.Background(), app.Config.QuestionsPath)
			if out.Path != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: loaded %d question(s), skipped %d\n", out.Path, out.Loaded, len(out.Skipped))
				if len(out.Skipped) > 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), domain.JoinSkips(out.Skipped))
				}
			}
			return err
		},
	}
}
