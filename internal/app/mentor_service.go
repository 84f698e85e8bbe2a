package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/mentor"
	"github.com/google/uuid"
)

// MentorResponder generates a mentor reply from user context and
// conversation history. Implemented by mentor.Responder.
type MentorResponder interface {
	Respond(ctx context.Context, userCtx mentor.UserContext, history []domain.ChatMessage, message string) string
}

// MentorService handles chat turns and proactive nudges.
type MentorService struct {
	store     Store
	responder MentorResponder
	now       func() time.Time
}

func NewMentorService(store Store, responder MentorResponder) *MentorService {
	return &MentorService{store: store, responder: responder, now: time.Now}
}

// recentAttemptsForContext bounds how much quiz history goes into the prompt.
const recentAttemptsForContext = 5

// Chat produces a mentor reply for a user message. The client-supplied
// conversation history provides the dialogue context (the responder
// strips the synthetic welcome turn). Both the user message and the
// reply are appended to the stored transcript, in that order, whichever
// path produced the reply.
func (s *MentorService) Chat(ctx context.Context, userID, message string, history []domain.ChatMessage) (string, error) {
	if userID == "" || message == "" {
		return "", fmt.Errorf("%w: userId and message are required", domain.ErrInvalidInput)
	}
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	reply := s.responder.Respond(ctx, s.buildUserContext(ctx, user), history, message)

	now := s.now().UTC()
	userMsg := domain.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      "user",
		Content:   message,
		Timestamp: now,
	}
	assistantMsg := domain.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      "assistant",
		Content:   reply,
		Timestamp: now.Add(time.Millisecond),
	}
	if err := s.store.AppendChatMessage(ctx, userMsg); err != nil {
		return "", err
	}
	if err := s.store.AppendChatMessage(ctx, assistantMsg); err != nil {
		return "", err
	}
	return reply, nil
}

// History returns the stored transcript for a user.
func (s *MentorService) History(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ChatHistory(ctx, userID, limit)
}

// Nudges derives proactive suggestions from stored state.
func (s *MentorService) Nudges(ctx context.Context, userID string) ([]domain.MentorNudge, error) {
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	skills, err := s.store.CurrentSkillLevels(ctx, userID)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.store.EnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	schedules, err := s.store.SchedulesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return mentor.BuildNudges(user, skills, enrollments, schedules), nil
}

// buildUserContext gathers the state snapshot for the system prompt.
// Failures here degrade to a thinner prompt rather than failing the turn.
func (s *MentorService) buildUserContext(ctx context.Context, user domain.User) mentor.UserContext {
	userCtx := mentor.UserContext{FullName: user.FullName}

	if skills, err := s.store.CurrentSkillLevels(ctx, user.ID); err == nil {
		userCtx.Skills = skills
	} else {
		log.Printf("mentor context: skill levels unavailable for %s: %v", user.ID, err)
	}
	if enrollments, err := s.store.EnrollmentsByUser(ctx, user.ID); err == nil {
		userCtx.EnrollmentCount = len(enrollments)
	}
	if attempts, err := s.store.RecentQuizAttempts(ctx, user.ID, recentAttemptsForContext); err == nil {
		userCtx.RecentAttempts = attempts
	}
	return userCtx
}
