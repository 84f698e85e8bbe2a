package app

import (
	"context"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
)

// Store abstracts the persistence gateway (Postgres in production,
// in-memory for tests and demo mode). Every operation is a single-row
// insert, select, or update; no multi-row transactions are needed.
type Store interface {
	CreateUser(ctx context.Context, user domain.User) error
	UserByID(ctx context.Context, id string) (domain.User, error)
	UserByUsername(ctx context.Context, username string) (domain.User, error)
	UserByEmail(ctx context.Context, email string) (domain.User, error)
	SetSelectedDomains(ctx context.Context, userID string, domains []string) error

	// AppendSkillLevel records a determination; rows are never updated.
	AppendSkillLevel(ctx context.Context, level domain.DomainSkillLevel) error
	// CurrentSkillLevels returns, for each domain, the skill level from
	// the row with the latest DeterminedAt. Implementations must order by
	// recency explicitly; insertion order is not a contract.
	CurrentSkillLevels(ctx context.Context, userID string) (map[string]domain.SkillLevel, error)

	CreateQuizAttempt(ctx context.Context, attempt domain.QuizAttempt) error
	RecentQuizAttempts(ctx context.Context, userID string, limit int) ([]domain.QuizAttempt, error)

	CreateEnrollment(ctx context.Context, enrollment domain.EnrolledCourse) error
	EnrollmentsByUser(ctx context.Context, userID string) ([]domain.EnrolledCourse, error)
	// UpdateProgress clamps progress to [0,100] and sets completed=true
	// when the clamped value reaches 100, in one atomic update.
	UpdateProgress(ctx context.Context, enrollmentID string, progress int) (domain.EnrolledCourse, error)

	AppendChatMessage(ctx context.Context, msg domain.ChatMessage) error
	ChatHistory(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error)

	CreateSchedule(ctx context.Context, entry domain.LearningSchedule) error
	SchedulesByUser(ctx context.Context, userID string) ([]domain.LearningSchedule, error)
	UpdateSchedule(ctx context.Context, id string, patch SchedulePatch) (domain.LearningSchedule, error)
}

// SchedulePatch carries the mutable schedule fields; nil means unchanged.
type SchedulePatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
}
