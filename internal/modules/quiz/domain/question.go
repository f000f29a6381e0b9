package domain

import (
	"fmt"
	"strings"
)

// Question is a validated multiple-choice question. Answer is the
// zero-based index of the correct entry in Choices.
type Question struct {
	Text    string
	Choices []string
	Answer  int
}

func (q Question) Validate() error {
	if len(q.Choices) == 0 {
		return fmt.Errorf("choices must not be empty")
	}
	if q.Answer < 0 || q.Answer >= len(q.Choices) {
		return fmt.Errorf("answer index %d out of range for %d choices", q.Answer, len(q.Choices))
	}
	return nil
}

func (q Question) CorrectText() string {
	return q.Choices[q.Answer]
}

// QuestionSet is the ordered, read-only list of playable questions.
type QuestionSet struct {
	questions []Question
}

func NewQuestionSet(questions []Question) QuestionSet {
	copied := make([]Question, len(questions))
	copy(copied, questions)
	return QuestionSet{questions: copied}
}

func (s QuestionSet) Len() int { return len(s.questions) }

func (s QuestionSet) At(i int) Question { return s.questions[i] }

// RecordSkip explains why one record of the questions file was dropped.
type RecordSkip struct {
	Index  int
	Reason string
}

func (s RecordSkip) String() string {
	return fmt.Sprintf("record %d: %s", s.Index, s.Reason)
}

// JoinSkips renders skips one per line.
func JoinSkips(skips []RecordSkip) string {
	lines := make([]string, 0, len(skips))
	for _, skip := range skips {
		lines = append(lines, skip.String())
	}
	return strings.Join(lines, "\n")
}
