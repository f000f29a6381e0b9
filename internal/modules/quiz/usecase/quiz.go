package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"quizterm/internal/modules/quiz/domain"
	"quizterm/internal/modules/quiz/dto"
	quizin "quizterm/internal/modules/quiz/port/in"
	"quizterm/internal/modules/quiz/service"
	apperrors "quizterm/internal/platform/errors"
)

type Interactor struct {
	svc    *service.QuizService
	logger *slog.Logger
}

func NewInteractor(svc *service.QuizService, logger *slog.Logger) quizin.Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interactor{svc: svc, logger: logger}
}

// LoadQuestions returns every valid question of the file. An empty set is
// not an error here; callers decide whether zero questions is fatal.
func (i *Interactor) LoadQuestions(ctx context.Context, input dto.LoadInput) (dto.LoadOutput, error) {
	set, skips, err := i.svc.Load(ctx, input.Path)
	if err != nil {
		return dto.LoadOutput{}, err
	}
	for _, skip := range skips {
		i.logger.Warn("skipping question record", "path", input.Path, "index", skip.Index, "reason", skip.Reason)
	}
	i.logger.Debug("questions loaded", "path", input.Path, "loaded", set.Len(), "skipped", len(skips))
	return dto.LoadOutput{Path: input.Path, Questions: set, Skipped: skips}, nil
}

func (i *Interactor) Check(ctx context.Context, input dto.LoadInput) (dto.CheckOutput, error) {
	loaded, err := i.LoadQuestions(ctx, input)
	if err != nil {
		return dto.CheckOutput{}, err
	}
	out := dto.CheckOutput{Path: loaded.Path, Loaded: loaded.Questions.Len(), Skipped: loaded.Skipped}
	if out.Loaded == 0 {
		return out, apperrors.ErrNoQuestions
	}
	return out, nil
}

// Play runs every question in order on the console and returns the summary.
func (i *Interactor) Play(ctx context.Context, input dto.PlayInput, console quizin.Console) (dto.PlayOutput, error) {
	if console == nil {
		return dto.PlayOutput{}, fmt.Errorf("console is not configured")
	}
	if err := console.Welcome(); err != nil {
		return dto.PlayOutput{}, err
	}
	loaded, err := i.LoadQuestions(ctx, dto.LoadInput{Path: input.Path})
	if err != nil {
		return dto.PlayOutput{}, err
	}
	if loaded.Questions.Len() == 0 {
		return dto.PlayOutput{Skipped: loaded.Skipped}, apperrors.ErrNoQuestions
	}

	session := i.svc.NewSession(loaded.Questions)
	for !session.Done() {
		q, pos, _ := session.Current()
		if err := console.ShowQuestion(pos+1, session.Total(), q); err != nil {
			return dto.PlayOutput{}, err
		}
		session.Begin(i.svc.Now())
		outcome, err := i.awaitAnswer(ctx, session, console, len(q.Choices))
		if err != nil {
			return dto.PlayOutput{}, err
		}
		i.logger.Debug("answer accepted", "question", pos+1, "correct", outcome.Correct, "elapsed", outcome.Elapsed)
		if err := console.ShowOutcome(outcome); err != nil {
			return dto.PlayOutput{}, err
		}
	}

	summary := session.Summary()
	if err := console.ShowSummary(summary); err != nil {
		return dto.PlayOutput{}, err
	}
	return dto.PlayOutput{Summary: summary, Skipped: loaded.Skipped}, nil
}

// awaitAnswer re-prompts until a line is accepted. Rejected lines are
// reported and otherwise ignored.
func (i *Interactor) awaitAnswer(ctx context.Context, session *domain.Session, console quizin.Console, choices int) (domain.Outcome, error) {
	for {
		if err := console.Prompt(choices); err != nil {
			return domain.Outcome{}, err
		}
		line, err := console.ReadLine(ctx)
		if err != nil {
			return domain.Outcome{}, err
		}
		outcome, err := session.Submit(line, i.svc.Now())
		if err == nil {
			return outcome, nil
		}
		if !domain.IsInputError(err) {
			return domain.Outcome{}, err
		}
		if err := console.ShowInputError(err); err != nil {
			return domain.Outcome{}, err
		}
	}
}
