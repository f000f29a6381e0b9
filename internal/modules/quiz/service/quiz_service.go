package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"quizterm/internal/modules/quiz/domain"
	quizout "quizterm/internal/modules/quiz/port/out"
	"quizterm/internal/platform/clock"
)

const (
	fieldQuestion = "question"
	fieldChoices  = "choices"
	fieldAnswer   = "answer"
)

type QuizService struct {
	clock  clock.Clock
	source quizout.QuestionSource
}

func NewQuizService(clock clock.Clock, source quizout.QuestionSource) *QuizService {
	return &QuizService{clock: clock, source: source}
}

func (s *QuizService) Now() time.Time {
	return s.clock.Now()
}

// Load reads the questions file and keeps every valid record in file
// order. File level failures abort; record level failures are reported as
// skips.
func (s *QuizService) Load(ctx context.Context, path string) (domain.QuestionSet, []domain.RecordSkip, error) {
	raw, err := s.source.Load(ctx, path)
	if err != nil {
		return domain.QuestionSet{}, nil, err
	}
	set, skips := BuildQuestionSet(raw)
	return set, skips, nil
}

// BuildQuestionSet validates decoded records one by one.
func BuildQuestionSet(raw []any) (domain.QuestionSet, []domain.RecordSkip) {
	questions := make([]domain.Question, 0, len(raw))
	var skips []domain.RecordSkip
	for i, item := range raw {
		q, err := decodeRecord(item)
		if err != nil {
			skips = append(skips, domain.RecordSkip{Index: i, Reason: err.Error()})
			continue
		}
		questions = append(questions, q)
	}
	return domain.NewQuestionSet(questions), skips
}

func decodeRecord(item any) (domain.Question, error) {
	record, ok := item.(map[string]any)
	if !ok {
		return domain.Question{}, fmt.Errorf("record is not an object")
	}

	rawText, ok := record[fieldQuestion]
	if !ok {
		return domain.Question{}, fmt.Errorf("missing field %q", fieldQuestion)
	}
	text, ok := rawText.(string)
	if !ok {
		return domain.Question{}, fmt.Errorf("field %q must be a string", fieldQuestion)
	}

	rawChoices, ok := record[fieldChoices]
	if !ok {
		return domain.Question{}, fmt.Errorf("missing field %q", fieldChoices)
	}
	list, ok := rawChoices.([]any)
	if !ok {
		return domain.Question{}, fmt.Errorf("field %q must be a list of strings", fieldChoices)
	}
	if len(list) == 0 {
		return domain.Question{}, fmt.Errorf("field %q must not be empty", fieldChoices)
	}
	choices := make([]string, 0, len(list))
	for j, c := range list {
		choice, ok := c.(string)
		if !ok {
			return domain.Question{}, fmt.Errorf("field %q[%d] must be a string", fieldChoices, j)
		}
		choices = append(choices, choice)
	}

	rawAnswer, ok := record[fieldAnswer]
	if !ok {
		return domain.Question{}, fmt.Errorf("missing field %q", fieldAnswer)
	}
	answer, ok := toInt(rawAnswer)
	if !ok {
		return domain.Question{}, fmt.Errorf("field %q must be an integer", fieldAnswer)
	}

	q := domain.Question{Text: text, Choices: choices, Answer: answer}
	if err := q.Validate(); err != nil {
		return domain.Question{}, err
	}
	return q, nil
}

// toInt accepts any integral number produced by the JSON or YAML decoders.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return fromFloat(float64(n))
	case uint64:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return fromFloat(f)
	default:
		return 0, false
	}
}

func fromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// NewSession starts a play session over an already loaded set.
func (s *QuizService) NewSession(set domain.QuestionSet) *domain.Session {
	return domain.NewSession(set)
}
