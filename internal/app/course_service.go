package app

import (
	"context"
	"fmt"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/google/uuid"
)

// DefaultDomain is used when a recommendation request names no domain
// and the user has no selections to fall back on.
const DefaultDomain = "Web Development"

// RecommendationSource returns a course list for a (domain, level) pair.
// The generator implements it directly; the Redis and memory caches
// decorate it with the same signature.
type RecommendationSource interface {
	Recommend(ctx context.Context, learningDomain string, level domain.SkillLevel) []domain.Course
}

// CourseService covers recommendations, enrollment and progress.
type CourseService struct {
	store           Store
	recommendations RecommendationSource
}

func NewCourseService(store Store, recommendations RecommendationSource) *CourseService {
	return &CourseService{store: store, recommendations: recommendations}
}

// Recommendations resolves the target domain and the user's current
// level, then queries the recommendation source. A user with no skill
// rows is treated as a Beginner; a missing domain parameter falls back
// to the first selected domain, then to DefaultDomain.
func (s *CourseService) Recommendations(ctx context.Context, userID, learningDomain string) ([]domain.Course, error) {
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if learningDomain == "" {
		if len(user.SelectedDomains) > 0 {
			learningDomain = user.SelectedDomains[0]
		} else {
			learningDomain = DefaultDomain
		}
	}

	level := domain.LevelBeginner
	if skills, err := s.store.CurrentSkillLevels(ctx, userID); err == nil {
		if current, ok := skills[learningDomain]; ok {
			level = current
		}
	}

	return s.recommendations.Recommend(ctx, learningDomain, level), nil
}

// EnrollInput is a validated enrollment request.
type EnrollInput struct {
	UserID         string
	CourseTitle    string
	CoursePlatform string
	CourseURL      string
	Domain         string
	IsPaid         bool
}

// Enroll records a new enrollment with zero progress.
func (s *CourseService) Enroll(ctx context.Context, in EnrollInput) (domain.EnrolledCourse, error) {
	if in.UserID == "" || in.CourseTitle == "" {
		return domain.EnrolledCourse{}, fmt.Errorf("%w: userId and course title are required", domain.ErrInvalidInput)
	}
	if _, err := s.store.UserByID(ctx, in.UserID); err != nil {
		return domain.EnrolledCourse{}, err
	}

	enrollment := domain.EnrolledCourse{
		ID:             uuid.NewString(),
		UserID:         in.UserID,
		CourseTitle:    in.CourseTitle,
		CoursePlatform: in.CoursePlatform,
		CourseURL:      in.CourseURL,
		Domain:         in.Domain,
		IsPaid:         in.IsPaid,
		Progress:       0,
		Completed:      false,
		EnrolledAt:     time.Now().UTC(),
	}
	if err := s.store.CreateEnrollment(ctx, enrollment); err != nil {
		return domain.EnrolledCourse{}, err
	}
	return enrollment, nil
}

// EnrolledCourses lists a user's enrollments.
func (s *CourseService) EnrolledCourses(ctx context.Context, userID string) ([]domain.EnrolledCourse, error) {
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.EnrollmentsByUser(ctx, userID)
}

// UpdateProgress sets progress on an enrollment. The store clamps the
// value to [0,100] and flips completed when it reaches 100.
func (s *CourseService) UpdateProgress(ctx context.Context, enrollmentID string, progress int) (domain.EnrolledCourse, error) {
	if enrollmentID == "" {
		return domain.EnrolledCourse{}, fmt.Errorf("%w: enrollment id is required", domain.ErrInvalidInput)
	}
	return s.store.UpdateProgress(ctx, enrollmentID, progress)
}
