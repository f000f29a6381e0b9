package domain_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"quizterm/internal/modules/quiz/domain"
)

var t0 = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func sampleSet() domain.QuestionSet {
	return domain.NewQuestionSet([]domain.Question{
		{Text: "2+2?", Choices: []string{"3", "4", "5"}, Answer: 1},
		{Text: "Capital of France?", Choices: []string{"Paris", "Rome"}, Answer: 0},
	})
}

func TestParseChoice(t *testing.T) {
	t.Parallel()
	cases := []struct {
		line  string
		want  int
		kind  domain.InputErrorKind
		valid bool
	}{
		{line: "1", want: 0, valid: true},
		{line: " 3 \r", want: 2, valid: true},
		{line: "0", kind: domain.InputOutOfRange},
		{line: "4", kind: domain.InputOutOfRange},
		{line: "-1", kind: domain.InputOutOfRange},
		{line: "99999999999999999999", kind: domain.InputOutOfRange},
		{line: "-99999999999999999999", kind: domain.InputOutOfRange},
		{line: "abc", kind: domain.InputNotNumber},
		{line: "", kind: domain.InputNotNumber},
		{line: "2abc", kind: domain.InputNotNumber},
		{line: "1.0", kind: domain.InputNotNumber},
	}
	for _, tc := range cases {
		got, err := domain.ParseChoice(tc.line, 3)
		if tc.valid {
			if err != nil || got != tc.want {
				t.Fatalf("ParseChoice(%q) = %d, %v; want %d", tc.line, got, err, tc.want)
			}
			continue
		}
		var inputErr *domain.InputError
		if !errors.As(err, &inputErr) {
			t.Fatalf("ParseChoice(%q) expected input error, got %v", tc.line, err)
		}
		if inputErr.Kind != tc.kind {
			t.Fatalf("ParseChoice(%q) kind = %d, want %d", tc.line, inputErr.Kind, tc.kind)
		}
	}
}

func TestInputErrorMessages(t *testing.T) {
	t.Parallel()
	_, err := domain.ParseChoice("x", 3)
	if err.Error() != "Invalid input, please enter a number." {
		t.Fatalf("unexpected message %q", err.Error())
	}
	_, err = domain.ParseChoice("9", 3)
	if err.Error() != "Please enter a number between 1 and 3." {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !domain.IsInputError(err) {
		t.Fatalf("expected IsInputError")
	}
}

func TestSessionTimesOnlyStartToAccept(t *testing.T) {
	t.Parallel()
	s := domain.NewSession(sampleSet())
	s.Begin(t0)
	if _, err := s.Submit("nope", t0.Add(time.Second)); !domain.IsInputError(err) {
		t.Fatalf("expected input error, got %v", err)
	}
	if _, err := s.Submit("7", t0.Add(2*time.Second)); !domain.IsInputError(err) {
		t.Fatalf("expected input error, got %v", err)
	}
	// Beginning again while awaiting input must not reset the timer.
	s.Begin(t0.Add(2 * time.Second))
	out, err := s.Submit("2", t0.Add(2500*time.Millisecond))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Correct || out.Chosen != 1 || out.Elapsed != 2500*time.Millisecond {
		t.Fatalf("unexpected outcome %+v", out)
	}

	s.Begin(t0.Add(3 * time.Second))
	out, err = s.Submit("2", t0.Add(4*time.Second))
	if err != nil {
		t.Fatalf("submit second: %v", err)
	}
	if out.Correct || out.CorrectText != "Paris" {
		t.Fatalf("expected wrong answer with Paris, got %+v", out)
	}
	if !s.Done() {
		t.Fatalf("session should be done")
	}

	sum := s.Summary()
	if sum.TotalQuestions != 2 || sum.Attempts != 2 || sum.Score != 1 {
		t.Fatalf("unexpected summary %+v", sum)
	}
	if sum.TotalSeconds != 3.5 || sum.AverageSeconds != 1.75 {
		t.Fatalf("unexpected times %+v", sum)
	}
}

func TestSessionRejectsSubmitBeforeBeginAndAfterDone(t *testing.T) {
	t.Parallel()
	s := domain.NewSession(domain.NewQuestionSet([]domain.Question{{Text: "q", Choices: []string{"a"}, Answer: 0}}))
	if _, err := s.Submit("1", t0); err == nil || domain.IsInputError(err) {
		t.Fatalf("submit before begin should fail with a state error, got %v", err)
	}
	s.Begin(t0)
	if _, err := s.Submit("1", t0.Add(time.Second)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.Submit("1", t0.Add(2*time.Second)); err == nil {
		t.Fatalf("submit after done should fail")
	}
	if _, _, ok := s.Current(); ok {
		t.Fatalf("no current question after done")
	}
}

func TestSessionAllCorrect(t *testing.T) {
	t.Parallel()
	set := sampleSet()
	s := domain.NewSession(set)
	now := t0
	for !s.Done() {
		q, _, _ := s.Current()
		s.Begin(now)
		now = now.Add(time.Second)
		if _, err := s.Submit(string(rune('1'+q.Answer)), now); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	sum := s.Summary()
	if sum.Score != sum.Attempts || sum.Attempts != sum.TotalQuestions || sum.TotalQuestions != set.Len() {
		t.Fatalf("expected score == attempts == total, got %+v", sum)
	}
}

func TestSummaryAverage(t *testing.T) {
	t.Parallel()
	if got := domain.NewSummary(0, 0, 0, 0).AverageSeconds; got != 0.0 {
		t.Fatalf("average with zero attempts must be 0, got %v", got)
	}
	sum := domain.NewSummary(3, 3, 2, 10)
	if sum.AverageSeconds != 10.0/3.0 {
		t.Fatalf("average mismatch: %v", sum.AverageSeconds)
	}
	text := sum.String()
	for _, want := range []string{"Total Questions: 3", "Attempts: 3", "Score: 2", "Total Time Taken: 10.00 seconds", "Average Time per Question: 3.33 seconds"} {
		if !strings.Contains(text, want) {
			t.Fatalf("summary missing %q:\n%s", want, text)
		}
	}
}
