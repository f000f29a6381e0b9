package dto

import "quizterm/internal/modules/quiz/domain"

type LoadInput struct {
	Path string
}

type LoadOutput struct {
	Path      string
	Questions domain.QuestionSet
	Skipped   []domain.RecordSkip
}

type CheckOutput struct {
	Path    string
	Loaded  int
	Skipped []domain.RecordSkip
}

type PlayInput struct {
	Path string
}

type PlayOutput struct {
	Summary domain.Summary
	Skipped []domain.RecordSkip
}
