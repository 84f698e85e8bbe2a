package mentor_test

import (
	"testing"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/mentor"
)

func nudgeTypes(nudges []domain.MentorNudge) map[string]int {
	types := make(map[string]int)
	for _, n := range nudges {
		types[n.Type]++
	}
	return types
}

func TestBuildNudgesUnassessedDomains(t *testing.T) {
	user := domain.User{SelectedDomains: []string{"Web Development", "Data Science"}}
	skills := map[string]domain.SkillLevel{"Web Development": domain.LevelIntermediate}

	nudges := mentor.BuildNudges(user, skills, nil, nil)
	types := nudgeTypes(nudges)
	if types["assessment"] != 1 {
		t.Fatalf("expected one assessment nudge for Data Science, got %d", types["assessment"])
	}
}

func TestBuildNudgesStalledEnrollment(t *testing.T) {
	enrollments := []domain.EnrolledCourse{
		{CourseTitle: "Intro to React", Progress: 25},
		{CourseTitle: "Node Basics", Progress: 80},
		{CourseTitle: "Done Course", Progress: 100, Completed: true},
		{CourseTitle: "Untouched", Progress: 0},
	}

	nudges := mentor.BuildNudges(domain.User{}, nil, enrollments, []domain.LearningSchedule{{Title: "week plan"}})
	types := nudgeTypes(nudges)
	if types["resume"] != 1 {
		t.Fatalf("expected one resume nudge for the 25%% course, got %d", types["resume"])
	}
}

func TestBuildNudgesScheduleAndEnroll(t *testing.T) {
	// Enrollments but no schedule: plan nudge.
	nudges := mentor.BuildNudges(domain.User{}, nil, []domain.EnrolledCourse{{CourseTitle: "c", Progress: 60}}, nil)
	if nudgeTypes(nudges)["schedule"] != 1 {
		t.Fatal("expected a schedule nudge when enrolled with no plan")
	}

	// Assessed skills but no enrollments: enroll nudge.
	skills := map[string]domain.SkillLevel{"Cybersecurity": domain.LevelBeginner}
	nudges = mentor.BuildNudges(domain.User{}, skills, nil, nil)
	if nudgeTypes(nudges)["enroll"] != 1 {
		t.Fatal("expected an enroll nudge when assessed with no enrollments")
	}
}

func TestBuildNudgesEmptyStateIsQuiet(t *testing.T) {
	if nudges := mentor.BuildNudges(domain.User{}, nil, nil, nil); len(nudges) != 0 {
		t.Fatalf("expected no nudges for a blank user, got %d", len(nudges))
	}
}
