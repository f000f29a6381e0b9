package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	quizinadapter "quizterm/internal/modules/quiz/adapter/in"
	quizoutadapter "quizterm/internal/modules/quiz/adapter/out"
	quizdto "quizterm/internal/modules/quiz/dto"
	quizservice "quizterm/internal/modules/quiz/service"
	quizusecase "quizterm/internal/modules/quiz/usecase"
	"quizterm/internal/platform/clock"
	"quizterm/internal/platform/config"
	apperrors "quizterm/internal/platform/errors"
	"quizterm/internal/platform/termui"
	"quizterm/internal/ui/play"
)

type App struct {
	Config  config.Config
	QuizCLI quizinadapter.CLIHandler
	QuizTUI quizinadapter.TUIHandler
	Clock   clock.Clock
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	clk := clock.SystemClock{}
	quizUC := quizusecase.NewInteractor(
		quizservice.NewQuizService(clk, quizoutadapter.NewFileQuestionSource()),
		logger,
	)
	return &App{
		Config:  cfg,
		QuizCLI: quizinadapter.NewCLIHandler(quizUC),
		QuizTUI: quizinadapter.NewTUIHandler(quizUC),
		Clock:   clk,
	}, nil
}

// RunPlain plays the quiz on a line-based console.
func RunPlain(ctx context.Context, app *App, in io.Reader, out io.Writer) (quizdto.PlayOutput, error) {
	console := quizoutadapter.NewConsole(in, out, termui.IsTerminal(out))
	return app.QuizCLI.Play(ctx, app.Config.QuestionsPath, console)
}

// RunTUI plays the quiz in a Bubble Tea program and prints the summary
// once the alternate screen is gone.
func RunTUI(ctx context.Context, app *App, in io.Reader, out io.Writer) (quizdto.PlayOutput, error) {
	loaded, err := app.QuizTUI.LoadQuestions(ctx, app.Config.QuestionsPath)
	if err != nil {
		return quizdto.PlayOutput{}, err
	}
	if loaded.Questions.Len() == 0 {
		return quizdto.PlayOutput{Skipped: loaded.Skipped}, apperrors.ErrNoQuestions
	}
	summary, err := play.Run(ctx, loaded.Questions, app.Clock, in, out)
	if err != nil {
		return quizdto.PlayOutput{Summary: summary, Skipped: loaded.Skipped}, err
	}
	_, _ = fmt.Fprintf(out, "%s\n%s\n%s\n", quizoutadapter.SummaryBanner, summary.String(), quizoutadapter.Farewell)
	return quizdto.PlayOutput{Summary: summary, Skipped: loaded.Skipped}, nil
}
