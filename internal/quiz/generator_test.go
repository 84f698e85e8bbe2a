package quiz_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/llm"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/quiz"
)

type stubClient struct {
	reply string
	err   error
	calls int
}

func (s *stubClient) Complete(_ context.Context, _ llm.Request) (string, error) {
	s.calls++
	return s.reply, s.err
}

func validQuestionsJSON(t *testing.T, n int) string {
	t.Helper()
	questions := make([]domain.Question, n)
	for i := range questions {
		questions[i] = domain.Question{
			Question:      "generated question",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % 4,
		}
	}
	data, err := json.Marshal(map[string]interface{}{"questions": questions})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}

func TestGenerateUsesModelOutput(t *testing.T) {
	client := &stubClient{reply: validQuestionsJSON(t, 10)}
	gen := quiz.NewGenerator(client, time.Second)

	questions := gen.Generate(context.Background(), "Web Development")
	if len(questions) != 10 {
		t.Fatalf("expected 10 generated questions, got %d", len(questions))
	}
	if client.calls != 1 {
		t.Fatalf("expected one completion call, got %d", client.calls)
	}
}

func TestGenerateStripsCodeFences(t *testing.T) {
	client := &stubClient{reply: "```json\n" + validQuestionsJSON(t, 10) + "\n```"}
	gen := quiz.NewGenerator(client, time.Second)

	if got := gen.Generate(context.Background(), "Data Science"); len(got) != 10 {
		t.Fatalf("expected fenced JSON to parse, got %d questions", len(got))
	}
}

func TestGenerateFallsBackOnError(t *testing.T) {
	client := &stubClient{err: errors.New("upstream down")}
	gen := quiz.NewGenerator(client, time.Second)

	questions := gen.Generate(context.Background(), "Web Development")
	if len(questions) != 5 {
		t.Fatalf("expected 5 fallback questions, got %d", len(questions))
	}
}

func TestGenerateFallsBackOnInvalidPayload(t *testing.T) {
	for _, reply := range []string{
		"not json at all",
		`{"questions": []}`,
		`{"questions": [{"question": "q", "options": ["a", "b"], "correctAnswer": 0}]}`,
		`{"questions": [{"question": "q", "options": ["a", "b", "c", "d"], "correctAnswer": 7}]}`,
	} {
		client := &stubClient{reply: reply}
		gen := quiz.NewGenerator(client, time.Second)
		if got := gen.Generate(context.Background(), "Web Development"); len(got) != 5 {
			t.Errorf("reply %q: expected fallback of 5 questions, got %d", reply, len(got))
		}
	}
}

func TestFallbackMixesBothBanks(t *testing.T) {
	gen := quiz.NewGenerator(nil, time.Second)

	questions := gen.Fallback("Web Development")
	if len(questions) != 5 {
		t.Fatalf("expected fallback prefix of 5, got %d", len(questions))
	}
	for i, q := range questions {
		if len(q.Options) != 4 {
			t.Errorf("fallback question %d has %d options", i, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Errorf("fallback question %d has invalid answer index %d", i, q.CorrectAnswer)
		}
	}
}

// One generator instance serves every request, and the fallback path is
// the normal path whenever no API key is configured. Run with -race.
func TestFallbackIsSafeForConcurrentUse(t *testing.T) {
	gen := quiz.NewGenerator(nil, time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				if got := gen.Fallback("Web Development"); len(got) != 5 {
					t.Errorf("expected 5 fallback questions, got %d", len(got))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestFallbackUnknownDomainUsesGeneralBank(t *testing.T) {
	gen := quiz.NewGenerator(nil, time.Second)
	if got := gen.Fallback("Underwater Basket Weaving"); len(got) != 5 {
		t.Fatalf("expected general fallback of 5 questions, got %d", len(got))
	}
}
