package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/llm"
)

type flakyClient struct {
	errs  []error
	reply string
	calls int
}

func (f *flakyClient) Complete(_ context.Context, _ llm.Request) (string, error) {
	f.calls++
	if f.calls <= len(f.errs) {
		return "", f.errs[f.calls-1]
	}
	return f.reply, nil
}

func TestRetrySucceedsOnSecondAttempt(t *testing.T) {
	inner := &flakyClient{errs: []error{&llm.UnavailableError{Err: errors.New("503")}}, reply: "ok"}
	client := llm.WithRetry(inner, 0)

	out, err := client.Complete(context.Background(), llm.Request{})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != "ok" || inner.calls != 2 {
		t.Fatalf("expected success on attempt 2, got %q after %d calls", out, inner.calls)
	}
}

func TestRetryGivesUpAfterTwoAttempts(t *testing.T) {
	boom := errors.New("boom")
	inner := &flakyClient{errs: []error{boom, boom, boom}}
	client := llm.WithRetry(inner, 0)

	if _, err := client.Complete(context.Background(), llm.Request{}); !errors.Is(err, boom) {
		t.Fatalf("expected the underlying error, got %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("expected exactly 2 attempts, got %d", inner.calls)
	}
}

func TestRetrySkipsContextErrors(t *testing.T) {
	inner := &flakyClient{errs: []error{context.DeadlineExceeded, context.DeadlineExceeded}}
	client := llm.WithRetry(inner, 0)

	if _, err := client.Complete(context.Background(), llm.Request{}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("context errors must not be retried, got %d calls", inner.calls)
	}
}
