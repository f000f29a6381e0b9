package in

import (
	"context"

	"quizterm/internal/modules/quiz/dto"
	quizout "quizterm/internal/modules/quiz/port/out"
)

// Console is re-exported so inbound adapters can drive Play without
// depending on the outbound port package.
type Console = quizout.Console

type Usecase interface {
	LoadQuestions(ctx context.Context, input dto.LoadInput) (dto.LoadOutput, error)
	Check(ctx context.Context, input dto.LoadInput) (dto.CheckOutput, error)
	Play(ctx context.Context, input dto.PlayInput, console Console) (dto.PlayOutput, error)
}
