package mentor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/llm"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/mentor"
)

type stubClient struct {
	reply   string
	err     error
	lastReq llm.Request
}

func (s *stubClient) Complete(_ context.Context, req llm.Request) (string, error) {
	s.lastReq = req
	return s.reply, s.err
}

func TestSanitizeHistoryDropsWelcomeMessage(t *testing.T) {
	history := []domain.ChatMessage{
		{Role: "assistant", Content: mentor.WelcomeMessage},
		{Role: "user", Content: "how do closures work?"},
		{Role: "assistant", Content: "a closure captures its environment"},
		{Role: "assistant", Content: mentor.WelcomeMessage},
	}

	out := mentor.SanitizeHistory(history)
	if len(out) != 2 {
		t.Fatalf("expected 2 sanitized messages, got %d", len(out))
	}
	for _, msg := range out {
		if msg.Content == mentor.WelcomeMessage {
			t.Fatal("welcome message leaked into outgoing context")
		}
	}
	if out[0].Role != llm.RoleUser || out[1].Role != llm.RoleAssistant {
		t.Fatalf("roles not preserved: %s, %s", out[0].Role, out[1].Role)
	}
}

func TestRespondSendsSanitizedHistory(t *testing.T) {
	client := &stubClient{reply: "keep going, you're close"}
	r := mentor.NewResponder(client, time.Second)

	history := []domain.ChatMessage{
		{Role: "assistant", Content: mentor.WelcomeMessage},
		{Role: "user", Content: "what is recursion?"},
	}
	reply := r.Respond(context.Background(), mentor.UserContext{FullName: "Ada"}, history, "and iteration?")
	if reply != "keep going, you're close" {
		t.Fatalf("unexpected reply %q", reply)
	}

	for _, msg := range client.lastReq.Messages {
		if msg.Content == mentor.WelcomeMessage {
			t.Fatal("welcome message sent upstream")
		}
	}
	last := client.lastReq.Messages[len(client.lastReq.Messages)-1]
	if last.Role != llm.RoleUser || last.Content != "and iteration?" {
		t.Fatalf("current message not appended last: %+v", last)
	}
}

func TestRespondFallsBackOnError(t *testing.T) {
	r := mentor.NewResponder(&stubClient{err: errors.New("timeout")}, time.Second)

	reply := r.Respond(context.Background(), mentor.UserContext{}, nil, "I'm stuck and frustrated")
	if reply == "" {
		t.Fatal("expected canned reply, got empty string")
	}
	if reply != mentor.FallbackReply("I'm stuck and frustrated") {
		t.Fatalf("expected motivation canned reply, got %q", reply)
	}
}

func TestRespondFallsBackOnEmptyCompletion(t *testing.T) {
	r := mentor.NewResponder(&stubClient{reply: "   "}, time.Second)

	reply := r.Respond(context.Background(), mentor.UserContext{}, nil, "hello")
	if reply != mentor.FallbackReply("hello") {
		t.Fatalf("expected generic canned reply, got %q", reply)
	}
}

func TestRespondWithoutClientUsesFallback(t *testing.T) {
	r := mentor.NewResponder(nil, time.Second)
	if got := r.Respond(context.Background(), mentor.UserContext{}, nil, "when should I study?"); got != mentor.FallbackReply("when should I study?") {
		t.Fatalf("expected scheduling canned reply, got %q", got)
	}
}
