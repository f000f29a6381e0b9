package in

import (
	"context"

	quizdto "quizterm/internal/modules/quiz/dto"
	quizin "quizterm/internal/modules/quiz/port/in"
)

type CLIHandler struct {
	usecase quizin.Usecase
}

func NewCLIHandler(usecase quizin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Check(ctx context.Context, path string) (quizdto.CheckOutput, error) {
	return h.usecase.Check(ctx, quizdto.LoadInput{Path: path})
}

func (h CLIHandler) Play(ctx context.Context, path string, console quizin.Console) (quizdto.PlayOutput, error) {
	return h.usecase.Play(ctx, quizdto.PlayInput{Path: path}, console)
}
