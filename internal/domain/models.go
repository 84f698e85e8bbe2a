package domain

import "time"

// SkillLevel is the ordinal classification derived from a quiz percentage.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
)

// Valid reports whether the level is one of the three known tiers.
func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// UnansweredIndex is the sentinel answer value for a skipped question.
const UnansweredIndex = -1

// User is an account. SelectedDomains is set at onboarding.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	FullName        string    `json:"fullName,omitempty"`
	SelectedDomains []string  `json:"selectedDomains"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Question models an MCQ question with exactly one correct option.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty,omitempty"`
}

// DomainSkillLevel is one point-in-time skill determination. Rows are
// append-only; the current level for a (user, domain) pair is the row
// with the latest DeterminedAt.
type DomainSkillLevel struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Domain       string     `json:"domain"`
	SkillLevel   SkillLevel `json:"skillLevel"`
	DeterminedAt time.Time  `json:"determinedAt"`
}

// QuizAttempt is a completed quiz. Immutable once written.
type QuizAttempt struct {
	ID                   string     `json:"id"`
	UserID               string     `json:"userId"`
	Domain               string     `json:"domain"`
	Questions            []Question `json:"questions"`
	Answers              []int      `json:"answers"`
	Score                int        `json:"score"`
	TotalQuestions       int        `json:"totalQuestions"`
	SkillLevelDetermined SkillLevel `json:"skillLevelDetermined"`
	CompletedAt          time.Time  `json:"completedAt"`
}

// QuestionResult is the per-question breakdown of a scored attempt.
type QuestionResult struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	UserAnswer    int      `json:"userAnswer"`
	CorrectAnswer int      `json:"correctAnswer"`
	IsCorrect     bool     `json:"isCorrect"`
}

// Course is a recommendation entry, either generated or curated.
type Course struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Provider    string     `json:"provider"`
	URL         string     `json:"url"`
	Domain      string     `json:"domain"`
	SkillLevel  SkillLevel `json:"skillLevel"`
	Price       string     `json:"price"`
	Rating      float64    `json:"rating"`
	Duration    string     `json:"duration"`
	Description string     `json:"description"`
	IsFree      bool       `json:"isFree"`
}

// EnrolledCourse tracks a user's membership in a course. Progress is
// clamped to [0,100]; reaching 100 forces Completed.
type EnrolledCourse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	CourseTitle    string    `json:"courseTitle"`
	CoursePlatform string    `json:"coursePlatform"`
	CourseURL      string    `json:"courseUrl"`
	Domain         string    `json:"domain"`
	IsPaid         bool      `json:"isPaid"`
	Progress       int       `json:"progress"`
	Completed      bool      `json:"completed"`
	EnrolledAt     time.Time `json:"enrolledAt"`
}

// ChatMessage is one turn of a mentor conversation. Append-only.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// LearningSchedule is a scheduled task or milestone.
type LearningSchedule struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	CourseID    string    `json:"courseId,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"dueDate"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MentorNudge is a proactive suggestion surfaced on the dashboard.
type MentorNudge struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Link        string `json:"link"`
}
