package app

import (
	"context"
	"fmt"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/google/uuid"
)

// ScheduleService manages learning schedule entries.
type ScheduleService struct {
	store Store
}

func NewScheduleService(store Store) *ScheduleService {
	return &ScheduleService{store: store}
}

// CreateScheduleInput is a validated schedule creation request.
type CreateScheduleInput struct {
	UserID      string
	CourseID    string
	Title       string
	Description string
	DueDate     time.Time
}

func (s *ScheduleService) Create(ctx context.Context, in CreateScheduleInput) (domain.LearningSchedule, error) {
	if in.UserID == "" || in.Title == "" {
		return domain.LearningSchedule{}, fmt.Errorf("%w: userId and title are required", domain.ErrInvalidInput)
	}
	if _, err := s.store.UserByID(ctx, in.UserID); err != nil {
		return domain.LearningSchedule{}, err
	}

	entry := domain.LearningSchedule{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		CourseID:    in.CourseID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateSchedule(ctx, entry); err != nil {
		return domain.LearningSchedule{}, err
	}
	return entry, nil
}

func (s *ScheduleService) List(ctx context.Context, userID string) ([]domain.LearningSchedule, error) {
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.SchedulesByUser(ctx, userID)
}

func (s *ScheduleService) Update(ctx context.Context, id string, patch SchedulePatch) (domain.LearningSchedule, error) {
	if id == "" {
		return domain.LearningSchedule{}, fmt.Errorf("%w: schedule id is required", domain.ErrInvalidInput)
	}
	return s.store.UpdateSchedule(ctx, id, patch)
}
