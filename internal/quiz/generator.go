package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/llm"
	"github.com/google/uuid"
)

const (
	generatedSetSize = 10
	fallbackSetSize  = 5
	// High temperature plus a request nonce keeps repeated generations for
	// the same domain from returning identical question sets.
	generationTemperature = 0.9
)

// Generator produces a question set for a domain: generated when the
// model cooperates, drawn from the static banks otherwise.
type Generator struct {
	client  llm.Client
	timeout time.Duration

	// One generator serves all requests; rand.Rand is not safe for
	// concurrent use.
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGenerator(client llm.Client, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Generator{
		client:  client,
		timeout: timeout,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

const questionSystemPrompt = `You are a quiz generator for an online learning platform.

Rules:
- Return STRICT JSON only. No markdown, no commentary, no code fences.
- The JSON object has a single key "questions": an array of question objects.
- Each question object has: "question" (string), "options" (array of exactly 4 strings),
  "correctAnswer" (integer index 0-3), "difficulty" ("beginner", "intermediate" or "advanced").
- Questions must be self-contained and unambiguous, with exactly one correct option.
- Distractors should reflect plausible mistakes, not random noise.`

type generatedPayload struct {
	Questions []domain.Question `json:"questions"`
}

// Generate returns an ordered question set for the domain. Generation
// failures and malformed payloads fall back to the static banks; this
// method never returns an upstream error to the caller.
func (g *Generator) Generate(ctx context.Context, learningDomain string) []domain.Question {
	if g.client == nil {
		return g.Fallback(learningDomain)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := buildQuestionPrompt(learningDomain, uuid.NewString())
	raw, err := g.client.Complete(ctx, llm.Request{
		System:      questionSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Temperature: generationTemperature,
	})
	if err != nil {
		log.Printf("quiz generation failed for %q, using fallback bank: %v", learningDomain, err)
		return g.Fallback(learningDomain)
	}

	questions, err := parseQuestions(raw)
	if err != nil {
		log.Printf("quiz generation returned invalid payload for %q, using fallback bank: %v", learningDomain, err)
		return g.Fallback(learningDomain)
	}
	return questions
}

// Fallback concatenates the static banks for the domain, shuffles them
// uniformly and returns a fixed-size prefix.
func (g *Generator) Fallback(learningDomain string) []domain.Question {
	pool := bankFor(learningDomain)
	questions := make([]domain.Question, len(pool))
	copy(questions, pool)

	// rand.Shuffle is a Fisher-Yates permutation; sorting with a random
	// comparator would bias the selection.
	g.mu.Lock()
	g.rnd.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	g.mu.Unlock()

	if len(questions) > fallbackSetSize {
		questions = questions[:fallbackSetSize]
	}
	return questions
}

func buildQuestionPrompt(learningDomain, nonce string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d multiple-choice questions for the subject %q.\n", generatedSetSize, learningDomain)
	b.WriteString("Difficulty split: 3 beginner, 4 intermediate, 3 advanced, in that order.\n")
	b.WriteString("Cover distinct topics within the subject; do not repeat concepts.\n")
	fmt.Fprintf(&b, "Request id: %s (generate a fresh set, not a cached one).\n", nonce)
	return b.String()
}

// parseQuestions validates the model output: it must decode as JSON with
// a non-empty questions array, four options per question and an in-range
// correct index. Any other shape is a failure.
func parseQuestions(raw string) ([]domain.Question, error) {
	var payload generatedPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &payload); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if len(payload.Questions) == 0 {
		return nil, fmt.Errorf("no questions in payload")
	}
	for i, q := range payload.Questions {
		if q.Question == "" {
			return nil, fmt.Errorf("question %d has empty text", i)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("question %d has out-of-range answer index %d", i, q.CorrectAnswer)
		}
	}
	return payload.Questions, nil
}

// stripFences tolerates models that wrap JSON in a markdown code fence
// despite the strict-JSON instruction.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
