package mentor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/llm"
)

// WelcomeMessage is the synthetic greeting the front end shows before
// any real conversation. It must never be sent to the generative
// service: echoing it back as context made the model repeat its own
// greeting on every turn.
const WelcomeMessage = "Hi! I'm your AI learning mentor. Ask me anything about your courses, quizzes, or what to learn next."

// UserContext is the state snapshot woven into the system prompt.
type UserContext struct {
	FullName        string
	Skills          map[string]domain.SkillLevel
	EnrollmentCount int
	RecentAttempts  []domain.QuizAttempt
}

// Responder turns a user message plus context into a mentor reply.
type Responder struct {
	client  llm.Client
	timeout time.Duration
}

func NewResponder(client llm.Client, timeout time.Duration) *Responder {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &Responder{client: client, timeout: timeout}
}

// Respond builds the context-enriched prompt and asks the generative
// service for a reply. On any failure it degrades to the keyword-matched
// canned reply; the caller never sees an error.
func (r *Responder) Respond(ctx context.Context, userCtx UserContext, history []domain.ChatMessage, message string) string {
	if r.client == nil {
		return FallbackReply(message)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req := llm.Request{
		System:      buildSystemPrompt(userCtx),
		Messages:    append(SanitizeHistory(history), llm.Message{Role: llm.RoleUser, Content: message}),
		Temperature: 0.7,
	}

	reply, err := r.client.Complete(ctx, req)
	if err != nil {
		log.Printf("mentor generation failed, using canned reply: %v", err)
		return FallbackReply(message)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return FallbackReply(message)
	}
	return reply
}

// SanitizeHistory converts stored chat turns into outgoing context,
// dropping the synthetic welcome message wherever it appears.
func SanitizeHistory(history []domain.ChatMessage) []llm.Message {
	out := make([]llm.Message, 0, len(history))
	for _, msg := range history {
		if msg.Content == WelcomeMessage {
			continue
		}
		role := llm.RoleUser
		if msg.Role == "assistant" {
			role = llm.RoleAssistant
		}
		out = append(out, llm.Message{Role: role, Content: msg.Content})
	}
	return out
}

func buildSystemPrompt(userCtx UserContext) string {
	var b strings.Builder
	b.WriteString("You are a friendly, encouraging learning mentor on an online education platform. ")
	b.WriteString("Keep replies concise, concrete, and grounded in the student's actual state below.\n\n")

	name := userCtx.FullName
	if name == "" {
		name = "the student"
	}
	fmt.Fprintf(&b, "Student: %s\n", name)

	if len(userCtx.Skills) > 0 {
		b.WriteString("Current skill levels:\n")
		for d, lvl := range userCtx.Skills {
			fmt.Fprintf(&b, "- %s: %s\n", d, lvl)
		}
	} else {
		b.WriteString("The student has not taken any skill assessments yet.\n")
	}

	fmt.Fprintf(&b, "Enrolled courses: %d\n", userCtx.EnrollmentCount)

	if len(userCtx.RecentAttempts) > 0 {
		b.WriteString("Recent quiz results:\n")
		for _, a := range userCtx.RecentAttempts {
			fmt.Fprintf(&b, "- %s: %d/%d (%s)\n", a.Domain, a.Score, a.TotalQuestions, a.SkillLevelDetermined)
		}
	}

	return b.String()
}
