package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"quizterm/internal/modules/quiz/service"
	apperrors "quizterm/internal/platform/errors"
)

type stubSource struct {
	records []any
	err     error
}

func (s stubSource) Load(context.Context, string) ([]any, error) { return s.records, s.err }

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func decode(t *testing.T, raw string) []any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var out []any
	if err := dec.Decode(&out); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return out
}

func TestBuildQuestionSetWorkedExample(t *testing.T) {
	t.Parallel()
	raw := decode(t, `[{"question":"2+2?","choices":["3","4","5"],"answer":1}, {"question":"Bad","choices":["a"],"answer":5}]`)
	set, skips := service.BuildQuestionSet(raw)
	if set.Len() != 1 {
		t.Fatalf("expected 1 question, got %d", set.Len())
	}
	if q := set.At(0); q.Text != "2+2?" || q.Answer != 1 || len(q.Choices) != 3 {
		t.Fatalf("unexpected question %+v", q)
	}
	if len(skips) != 1 || skips[0].Index != 1 {
		t.Fatalf("expected record 1 skipped, got %+v", skips)
	}
}

func TestBuildQuestionSetSkipsInvalidRecords(t *testing.T) {
	t.Parallel()
	raw := decode(t, `[
		{"question":"ok","choices":["a","b"],"answer":0},
		{"choices":["a"],"answer":0},
		{"question":"no choices","answer":0},
		{"question":"no answer","choices":["a"]},
		{"question":7,"choices":["a"],"answer":0},
		{"question":"choices not list","choices":"a","answer":0},
		{"question":"choice not string","choices":["a",2],"answer":0},
		{"question":"empty choices","choices":[],"answer":0},
		{"question":"string answer","choices":["a"],"answer":"0"},
		{"question":"fraction","choices":["a","b"],"answer":0.5},
		{"question":"at len","choices":["a","b"],"answer":2},
		{"question":"negative","choices":["a","b"],"answer":-1},
		"not an object",
		{"question":"integral float","choices":["a","b"],"answer":1.0},
		{"question":"extra fields ok","choices":["a"],"answer":0,"hint":"x"}
	]`)
	set, skips := service.BuildQuestionSet(raw)
	if set.Len() != 3 {
		t.Fatalf("expected 3 valid questions, got %d: %+v", set.Len(), set)
	}
	wantTexts := []string{"ok", "integral float", "extra fields ok"}
	for i, want := range wantTexts {
		if set.At(i).Text != want {
			t.Fatalf("question %d = %q, want %q", i, set.At(i).Text, want)
		}
	}
	if len(skips) != 12 {
		t.Fatalf("expected 12 skips, got %d: %+v", len(skips), skips)
	}
	for i, skip := range skips {
		if skip.Index != i+1 {
			t.Fatalf("skip %d has index %d, expected file order", i, skip.Index)
		}
		if skip.Reason == "" {
			t.Fatalf("skip %d has no reason", i)
		}
	}
}

func TestBuildQuestionSetAcceptsYAMLNumberTypes(t *testing.T) {
	t.Parallel()
	raw := []any{
		map[string]any{"question": "int", "choices": []any{"a", "b"}, "answer": 1},
		map[string]any{"question": "int64", "choices": []any{"a", "b"}, "answer": int64(0)},
		map[string]any{"question": "huge", "choices": []any{"a"}, "answer": uint64(1 << 40)},
	}
	set, skips := service.BuildQuestionSet(raw)
	if set.Len() != 2 || len(skips) != 1 || skips[0].Index != 2 {
		t.Fatalf("unexpected result: %d loaded, skips %+v", set.Len(), skips)
	}
}

func TestBuildQuestionSetEmpty(t *testing.T) {
	t.Parallel()
	set, skips := service.BuildQuestionSet([]any{})
	if set.Len() != 0 || len(skips) != 0 {
		t.Fatalf("empty input should give an empty set without skips")
	}
}

func TestLoadPropagatesSourceErrors(t *testing.T) {
	t.Parallel()
	svc := service.NewQuizService(fixedClock{}, stubSource{err: apperrors.ErrFormat})
	if _, _, err := svc.Load(context.Background(), "q.json"); !errors.Is(err, apperrors.ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestLoadAndSession(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	svc := service.NewQuizService(fixedClock{at: at}, stubSource{records: decode(t, `[{"question":"q","choices":["a"],"answer":0}]`)})
	set, skips, err := svc.Load(context.Background(), "q.json")
	if err != nil || set.Len() != 1 || len(skips) != 0 {
		t.Fatalf("load: %d %v %v", set.Len(), skips, err)
	}
	if !svc.Now().Equal(at) {
		t.Fatalf("service clock not used")
	}
	session := svc.NewSession(set)
	if session.Total() != 1 || session.Done() {
		t.Fatalf("unexpected fresh session state")
	}
}
