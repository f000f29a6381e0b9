package in

import (
	"context"

	quizdto "quizterm/internal/modules/quiz/dto"
	quizin "quizterm/internal/modules/quiz/port/in"
)

type TUIHandler struct {
	usecase quizin.Usecase
}

func NewTUIHandler(usecase quizin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) LoadQuestions(ctx context.Context, path string) (quizdto.LoadOutput, error) {
	return h.usecase.LoadQuestions(ctx, quizdto.LoadInput{Path: path})
}
