package out

import (
	"context"

	"quizterm/internal/modules/quiz/domain"
)

// QuestionSource yields the raw, undecoded records of a questions file in
// file order. Reading or structural failures are returned as errors; record
// level problems are left for the caller to judge.
type QuestionSource interface {
	Load(ctx context.Context, path string) ([]any, error)
}

// Console is the line-based terminal the session runner plays on.
type Console interface {
	Welcome() error
	ShowQuestion(position, total int, q domain.Question) error
	Prompt(choices int) error
	ReadLine(ctx context.Context) (string, error)
	ShowInputError(err error) error
	ShowOutcome(outcome domain.Outcome) error
	ShowSummary(summary domain.Summary) error
}
