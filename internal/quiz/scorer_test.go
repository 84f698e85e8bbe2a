package quiz_test

import (
	"errors"
	"testing"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/quiz"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		percentage float64
		want       domain.SkillLevel
	}{
		{0, domain.LevelBeginner},
		{39.9, domain.LevelBeginner},
		{40, domain.LevelIntermediate},
		{55, domain.LevelIntermediate},
		{69.9, domain.LevelIntermediate},
		{70, domain.LevelAdvanced},
		{100, domain.LevelAdvanced},
	}
	for _, tc := range cases {
		if got := quiz.Classify(tc.percentage); got != tc.want {
			t.Errorf("Classify(%v) = %s, want %s", tc.percentage, got, tc.want)
		}
	}
}

func TestScoreCountsMatches(t *testing.T) {
	questions := fiveQuestions()
	// 4 of 5 correct; question 2 answered wrong.
	answers := []int{0, 1, 0, 2, 3}
	answers[2] = 1

	result, err := quiz.Score(questions, answers)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if result.Score != 4 || result.TotalQuestions != 5 {
		t.Fatalf("expected 4/5, got %d/%d", result.Score, result.TotalQuestions)
	}
	if result.Percentage != 80 {
		t.Fatalf("expected 80%%, got %v", result.Percentage)
	}
	if result.SkillLevel != domain.LevelAdvanced {
		t.Fatalf("expected Advanced at 80%%, got %s", result.SkillLevel)
	}
}

func TestScoreBreakdownCoversEveryQuestion(t *testing.T) {
	questions := fiveQuestions()
	answers := []int{0, 0, 0, 0, domain.UnansweredIndex}

	result, err := quiz.Score(questions, answers)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if len(result.Breakdown) != 5 {
		t.Fatalf("expected 5 breakdown entries, got %d", len(result.Breakdown))
	}
	for i, entry := range result.Breakdown {
		if entry.UserAnswer != answers[i] {
			t.Errorf("entry %d: user answer %d, want %d", i, entry.UserAnswer, answers[i])
		}
		if entry.IsCorrect != (answers[i] == questions[i].CorrectAnswer) {
			t.Errorf("entry %d: isCorrect mismatch", i)
		}
	}
	if result.Breakdown[4].IsCorrect {
		t.Fatalf("unanswered question must not count as correct")
	}
}

func TestScoreRejectsEmptyQuiz(t *testing.T) {
	_, err := quiz.Score(nil, nil)
	if !errors.Is(err, domain.ErrEmptyQuiz) {
		t.Fatalf("expected ErrEmptyQuiz, got %v", err)
	}
}

func TestScoreRejectsLengthMismatch(t *testing.T) {
	_, err := quiz.Score(fiveQuestions(), []int{0, 1})
	if !errors.Is(err, domain.ErrAnswerMismatch) {
		t.Fatalf("expected ErrAnswerMismatch, got %v", err)
	}
}

func fiveQuestions() []domain.Question {
	keys := []int{0, 1, 0, 2, 3}
	questions := make([]domain.Question, 5)
	for i, key := range keys {
		questions[i] = domain.Question{
			Question:      "sample question",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: key,
		}
	}
	return questions
}
