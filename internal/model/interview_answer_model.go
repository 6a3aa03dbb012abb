package model

import (
	"time"

	"github.com/google/uuid"
)

// InterviewAnswer is keyed 1:1 to a question. The unique index on QuestionID
// backs the upsert semantics: at most one row per question at any time.
type InterviewAnswer struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID   uuid.UUID `gorm:"type:uuid;index" json:"session_id"`
	QuestionID  uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"question_id"`
	AnswerText  string    `gorm:"type:text" json:"answer_text"`
	TimeTaken   int       `json:"time_taken"` // seconds, evaluation context only
	Score       *float64  `json:"score"`      // 0-10
	AIFeedback  string    `gorm:"column:ai_feedback;type:text" json:"ai_feedback"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func (a *InterviewAnswer) TableName() string {
	return "interview_answers"
}
