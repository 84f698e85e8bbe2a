package mentor

import (
	"fmt"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
)

// BuildNudges derives proactive dashboard suggestions from stored user
// state. Pure function, no generative call: nudges must always be
// available and cheap.
func BuildNudges(user domain.User, skills map[string]domain.SkillLevel, enrollments []domain.EnrolledCourse, schedules []domain.LearningSchedule) []domain.MentorNudge {
	var nudges []domain.MentorNudge

	// Selected domains without an assessment yet.
	for _, d := range user.SelectedDomains {
		if _, assessed := skills[d]; !assessed {
			nudges = append(nudges, domain.MentorNudge{
				Type:        "assessment",
				Title:       fmt.Sprintf("Assess your %s skills", d),
				Description: fmt.Sprintf("Take a quick quiz to find your level in %s and unlock tailored course recommendations.", d),
				Action:      "Take quiz",
				Link:        "/quiz?domain=" + d,
			})
		}
	}

	// Stalled enrollments: started but under halfway and not completed.
	for _, e := range enrollments {
		if !e.Completed && e.Progress > 0 && e.Progress < 50 {
			nudges = append(nudges, domain.MentorNudge{
				Type:        "resume",
				Title:       "Resume " + e.CourseTitle,
				Description: fmt.Sprintf("You're %d%% through %s. A short session now keeps the streak alive.", e.Progress, e.CourseTitle),
				Action:      "Continue course",
				Link:        e.CourseURL,
			})
		}
	}

	// No schedule at all: suggest planning.
	if len(schedules) == 0 && len(enrollments) > 0 {
		nudges = append(nudges, domain.MentorNudge{
			Type:        "schedule",
			Title:       "Plan your study week",
			Description: "You have courses in progress but no scheduled sessions. Blocking out time makes finishing far more likely.",
			Action:      "Create schedule",
			Link:        "/schedule",
		})
	}

	// Enrolled in nothing despite having assessed skills.
	if len(enrollments) == 0 && len(skills) > 0 {
		nudges = append(nudges, domain.MentorNudge{
			Type:        "enroll",
			Title:       "Pick your first course",
			Description: "Your skill levels are assessed. Browse the recommendations and enroll in one course to get started.",
			Action:      "Browse courses",
			Link:        "/courses",
		})
	}

	return nudges
}
