package quiz

import (
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
)

// Result is a fully scored submission.
type Result struct {
	Score          int
	TotalQuestions int
	Percentage     float64
	SkillLevel     domain.SkillLevel
	Breakdown      []domain.QuestionResult
}

// Score compares answers against question keys and classifies the
// percentage. Answers and questions must be parallel sequences; an
// answer is either a valid option index or domain.UnansweredIndex.
func Score(questions []domain.Question, answers []int) (Result, error) {
	if len(questions) == 0 {
		return Result{}, domain.ErrEmptyQuiz
	}
	if len(answers) != len(questions) {
		return Result{}, domain.ErrAnswerMismatch
	}

	score := 0
	breakdown := make([]domain.QuestionResult, len(questions))
	for i, q := range questions {
		correct := answers[i] == q.CorrectAnswer
		if correct {
			score++
		}
		breakdown[i] = domain.QuestionResult{
			Question:      q.Question,
			Options:       q.Options,
			UserAnswer:    answers[i],
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     correct,
		}
	}

	percentage := 100 * float64(score) / float64(len(questions))
	return Result{
		Score:          score,
		TotalQuestions: len(questions),
		Percentage:     percentage,
		SkillLevel:     Classify(percentage),
		Breakdown:      breakdown,
	}, nil
}

// Classify maps a percentage to a skill level. Boundaries are inclusive
// on the lower bound of each tier: exactly 70 is Advanced, exactly 40 is
// Intermediate. Stateless; each submission is classified independently.
func Classify(percentage float64) domain.SkillLevel {
	switch {
	case percentage >= 70:
		return domain.LevelAdvanced
	case percentage >= 40:
		return domain.LevelIntermediate
	default:
		return domain.LevelBeginner
	}
}
