package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type InterviewQuestion struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_session_question_number,priority:1" json:"session_id"`
	QuestionNumber int       `gorm:"uniqueIndex:idx_session_question_number,priority:2" json:"question_number"`
	Difficulty     string    `gorm:"type:varchar(16)" json:"difficulty"`
	QuestionText   string    `gorm:"type:text" json:"question_text"`
	TimeLimit      int       `json:"time_limit"` // seconds
	GeneratedAt    time.Time `json:"generated_at"`
}

func (q *InterviewQuestion) TableName() string {
	return "interview_questions"
}

// DifficultyForNumber maps a question number to its fixed difficulty tier:
// 1-2 easy, 3-4 medium, 5-6 hard.
func DifficultyForNumber(number int) string {
	switch {
	case number <= 2:
		return DifficultyEasy
	case number <= 4:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// TimeLimitForDifficulty returns the fixed answer window per tier. The time
// limit is derived solely from difficulty, never chosen by the generator.
func TimeLimitForDifficulty(difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return 20
	case DifficultyMedium:
		return 60
	default:
		return 120
	}
}
