package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/app"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
)

// Store is an in-memory implementation of app.Store, used by tests and
// by demo mode when no Postgres URL is configured.
type Store struct {
	mu          sync.RWMutex
	users       map[string]domain.User
	skillLevels []domain.DomainSkillLevel
	attempts    []domain.QuizAttempt
	enrollments map[string]domain.EnrolledCourse
	messages    []domain.ChatMessage
	schedules   map[string]domain.LearningSchedule
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]domain.User),
		enrollments: make(map[string]domain.EnrolledCourse),
		schedules:   make(map[string]domain.LearningSchedule),
	}
}

func (s *Store) CreateUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *Store) UserByID(_ context.Context, id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) UserByUsername(_ context.Context, username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (s *Store) UserByEmail(_ context.Context, email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (s *Store) SetSelectedDomains(_ context.Context, userID string, domains []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.SelectedDomains = append([]string(nil), domains...)
	s.users[userID] = user
	return nil
}

func (s *Store) AppendSkillLevel(_ context.Context, level domain.DomainSkillLevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skillLevels = append(s.skillLevels, level)
	return nil
}

// CurrentSkillLevels keeps, per domain, the row with the latest
// DeterminedAt. Insertion order deliberately does not matter.
func (s *Store) CurrentSkillLevels(_ context.Context, userID string) (map[string]domain.SkillLevel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	latest := make(map[string]domain.DomainSkillLevel)
	for _, row := range s.skillLevels {
		if row.UserID != userID {
			continue
		}
		if current, ok := latest[row.Domain]; !ok || row.DeterminedAt.After(current.DeterminedAt) {
			latest[row.Domain] = row
		}
	}

	out := make(map[string]domain.SkillLevel, len(latest))
	for d, row := range latest {
		out[d] = row.SkillLevel
	}
	return out, nil
}

func (s *Store) CreateQuizAttempt(_ context.Context, attempt domain.QuizAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, attempt)
	return nil
}

func (s *Store) RecentQuizAttempts(_ context.Context, userID string, limit int) ([]domain.QuizAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.QuizAttempt
	for _, a := range s.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) CreateEnrollment(_ context.Context, enrollment domain.EnrolledCourse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enrollments[enrollment.ID] = enrollment
	return nil
}

func (s *Store) EnrollmentsByUser(_ context.Context, userID string) ([]domain.EnrolledCourse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.EnrolledCourse
	for _, e := range s.enrollments {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EnrolledAt.Before(out[j].EnrolledAt)
	})
	return out, nil
}

func (s *Store) UpdateProgress(_ context.Context, enrollmentID string, progress int) (domain.EnrolledCourse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enrollment, ok := s.enrollments[enrollmentID]
	if !ok {
		return domain.EnrolledCourse{}, domain.ErrEnrollmentNotFound
	}

	enrollment.Progress = clamp(progress, 0, 100)
	if enrollment.Progress >= 100 {
		enrollment.Completed = true
	}
	s.enrollments[enrollmentID] = enrollment
	return enrollment, nil
}

func (s *Store) AppendChatMessage(_ context.Context, msg domain.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}

func (s *Store) ChatHistory(_ context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.ChatMessage
	for _, m := range s.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (s *Store) CreateSchedule(_ context.Context, entry domain.LearningSchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[entry.ID] = entry
	return nil
}

func (s *Store) SchedulesByUser(_ context.Context, userID string) ([]domain.LearningSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.LearningSchedule
	for _, entry := range s.schedules {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out, nil
}

func (s *Store) UpdateSchedule(_ context.Context, id string, patch app.SchedulePatch) (domain.LearningSchedule, error) {
	if patch.Title == nil && patch.Description == nil && patch.DueDate == nil && patch.Completed == nil {
		return domain.LearningSchedule{}, fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.schedules[id]
	if !ok {
		return domain.LearningSchedule{}, domain.ErrScheduleNotFound
	}
	if patch.Title != nil {
		entry.Title = *patch.Title
	}
	if patch.Description != nil {
		entry.Description = *patch.Description
	}
	if patch.DueDate != nil {
		entry.DueDate = *patch.DueDate
	}
	if patch.Completed != nil {
		entry.Completed = *patch.Completed
	}
	s.schedules[id] = entry
	return entry, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
