package app

import (
	"context"
	"fmt"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/quiz"
	"github.com/google/uuid"
)

// QuestionSource produces a question set for a domain. Implemented by
// quiz.Generator; a fake suffices in tests.
type QuestionSource interface {
	Generate(ctx context.Context, learningDomain string) []domain.Question
}

// QuizService orchestrates assessment: generate, score, classify, persist.
type QuizService struct {
	store     Store
	questions QuestionSource
	now       func() time.Time
}

func NewQuizService(store Store, questions QuestionSource) *QuizService {
	return &QuizService{store: store, questions: questions, now: time.Now}
}

// NewQuizServiceWithClock is test-only for deterministic timestamps.
func NewQuizServiceWithClock(store Store, questions QuestionSource, now func() time.Time) *QuizService {
	return &QuizService{store: store, questions: questions, now: now}
}

// GeneratedQuiz is the response of a generate call.
type GeneratedQuiz struct {
	Domain    string            `json:"domain"`
	Questions []domain.Question `json:"questions"`
}

// GenerateQuiz picks the first of the requested domains that has no
// current skill level (so unassessed domains are covered first) and
// produces a question set for it. Nothing is persisted until submission.
func (s *QuizService) GenerateQuiz(ctx context.Context, userID string, domains []string) (GeneratedQuiz, error) {
	if userID == "" || len(domains) == 0 {
		return GeneratedQuiz{}, fmt.Errorf("%w: userId and domains are required", domain.ErrInvalidInput)
	}
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		return GeneratedQuiz{}, err
	}

	target := domains[0]
	if skills, err := s.store.CurrentSkillLevels(ctx, userID); err == nil {
		for _, d := range domains {
			if _, assessed := skills[d]; !assessed {
				target = d
				break
			}
		}
	}

	return GeneratedQuiz{
		Domain:    target,
		Questions: s.questions.Generate(ctx, target),
	}, nil
}

// SubmitInput is a completed quiz handed back by the client.
type SubmitInput struct {
	UserID    string
	Domain    string
	Questions []domain.Question
	Answers   []int
}

// SubmitResult reports the scored outcome.
type SubmitResult struct {
	Score          int                     `json:"score"`
	TotalQuestions int                     `json:"totalQuestions"`
	Percentage     float64                 `json:"percentage"`
	SkillLevel     domain.SkillLevel       `json:"skillLevel"`
	Results        []domain.QuestionResult `json:"results"`
}

// SubmitQuiz scores the submission, appends the attempt and the derived
// skill level, and returns the breakdown. Each submission is an
// independent append; concurrent submissions for the same (user, domain)
// simply produce multiple rows and recency decides the current level.
func (s *QuizService) SubmitQuiz(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	if in.UserID == "" || in.Domain == "" {
		return SubmitResult{}, fmt.Errorf("%w: userId and domain are required", domain.ErrInvalidInput)
	}
	if _, err := s.store.UserByID(ctx, in.UserID); err != nil {
		return SubmitResult{}, err
	}

	scored, err := quiz.Score(in.Questions, in.Answers)
	if err != nil {
		return SubmitResult{}, err
	}

	now := s.now().UTC()
	attempt := domain.QuizAttempt{
		ID:                   uuid.NewString(),
		UserID:               in.UserID,
		Domain:               in.Domain,
		Questions:            in.Questions,
		Answers:              in.Answers,
		Score:                scored.Score,
		TotalQuestions:       scored.TotalQuestions,
		SkillLevelDetermined: scored.SkillLevel,
		CompletedAt:          now,
	}
	if err := s.store.CreateQuizAttempt(ctx, attempt); err != nil {
		return SubmitResult{}, err
	}

	if err := s.store.AppendSkillLevel(ctx, domain.DomainSkillLevel{
		ID:           uuid.NewString(),
		UserID:       in.UserID,
		Domain:       in.Domain,
		SkillLevel:   scored.SkillLevel,
		DeterminedAt: now,
	}); err != nil {
		return SubmitResult{}, err
	}

	return SubmitResult{
		Score:          scored.Score,
		TotalQuestions: scored.TotalQuestions,
		Percentage:     scored.Percentage,
		SkillLevel:     scored.SkillLevel,
		Results:        scored.Breakdown,
	}, nil
}

// CurrentSkills returns the per-domain current levels for a user.
func (s *QuizService) CurrentSkills(ctx context.Context, userID string) (map[string]domain.SkillLevel, error) {
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.CurrentSkillLevels(ctx, userID)
}
