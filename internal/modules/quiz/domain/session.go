package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type InputErrorKind int

const (
	InputNotNumber InputErrorKind = iota
	InputOutOfRange
)

// InputError is returned for an answer line that cannot be accepted. It is
// recovered by re-prompting and never changes session state.
type InputError struct {
	Kind    InputErrorKind
	Choices int
}

func (e *InputError) Error() string {
	if e.Kind == InputOutOfRange {
		return fmt.Sprintf("Please enter a number between 1 and %d.", e.Choices)
	}
	return "Invalid input, please enter a number."
}

func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// ParseChoice converts a 1-based answer line into a zero-based index.
func ParseChoice(line string, choices int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if errors.Is(err, strconv.ErrRange) {
		return 0, &InputError{Kind: InputOutOfRange, Choices: choices}
	}
	if err != nil {
		return 0, &InputError{Kind: InputNotNumber, Choices: choices}
	}
	if n < 1 || n > choices {
		return 0, &InputError{Kind: InputOutOfRange, Choices: choices}
	}
	return n - 1, nil
}

// Outcome is the result of one accepted answer.
type Outcome struct {
	Question    Question
	Chosen      int
	Correct     bool
	CorrectText string
	Elapsed     time.Duration
}

// Summary is the end-of-run report. Times are in seconds.
type Summary struct {
	TotalQuestions int
	Attempts       int
	Score          int
	TotalSeconds   float64
	AverageSeconds float64
}

// Session accumulates results while questions are played in order. Each
// question moves from awaiting input to accepted exactly once.
type Session struct {
	questions QuestionSet
	current   int
	started   time.Time
	awaiting  bool
	attempts  int
	score     int
	times     []time.Duration
}

func NewSession(questions QuestionSet) *Session {
	return &Session{questions: questions, times: make([]time.Duration, 0, questions.Len())}
}

// Current returns the question being played and its zero-based position.
func (s *Session) Current() (Question, int, bool) {
	if s.Done() {
		return Question{}, s.current, false
	}
	return s.questions.At(s.current), s.current, true
}

func (s *Session) Total() int { return s.questions.Len() }

func (s *Session) Done() bool { return s.current >= s.questions.Len() }

// Begin starts the timer for the current question. Calling it again while
// the question is still awaiting input keeps the first start.
func (s *Session) Begin(now time.Time) {
	if s.Done() || s.awaiting {
		return
	}
	s.started = now
	s.awaiting = true
}

// Submit validates an answer line for the current question. Invalid lines
// return an *InputError and leave the session untouched.
func (s *Session) Submit(line string, now time.Time) (Outcome, error) {
	q, _, ok := s.Current()
	if !ok {
		return Outcome{}, fmt.Errorf("session already finished")
	}
	if !s.awaiting {
		return Outcome{}, fmt.Errorf("question %d was not started", s.current+1)
	}
	chosen, err := ParseChoice(line, len(q.Choices))
	if err != nil {
		return Outcome{}, err
	}

	elapsed := now.Sub(s.started)
	if elapsed < 0 {
		elapsed = 0
	}
	s.times = append(s.times, elapsed)
	s.attempts++
	correct := chosen == q.Answer
	if correct {
		s.score++
	}
	s.awaiting = false
	s.current++

	return Outcome{
		Question:    q,
		Chosen:      chosen,
		Correct:     correct,
		CorrectText: q.CorrectText(),
		Elapsed:     elapsed,
	}, nil
}

func (s *Session) Summary() Summary {
	var total time.Duration
	for _, t := range s.times {
		total += t
	}
	return NewSummary(s.questions.Len(), s.attempts, s.score, total.Seconds())
}

func NewSummary(totalQuestions, attempts, score int, totalSeconds float64) Summary {
	avg := 0.0
	if attempts > 0 {
		avg = totalSeconds / float64(attempts)
	}
	return Summary{
		TotalQuestions: totalQuestions,
		Attempts:       attempts,
		Score:          score,
		TotalSeconds:   totalSeconds,
		AverageSeconds: avg,
	}
}

// String renders the summary lines shared by every front-end, times with
// two decimals.
func (s Summary) String() string {
	return fmt.Sprintf("Total Questions: %d\nAttempts: %d\nScore: %d\nTotal Time Taken: %.2f seconds\nAverage Time per Question: %.2f seconds",
		s.TotalQuestions, s.Attempts, s.Score, s.TotalSeconds, s.AverageSeconds)
}
