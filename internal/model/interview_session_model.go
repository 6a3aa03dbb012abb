package model

import (
	"time"

	"github.com/google/uuid"
)

// Stored lifecycle states. StatusMaxRetries is a derived display label only and
// must never be written to the status column.
const (
	StatusCreated    = "created"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
	StatusMaxRetries = "max_retries_reached"
)

const (
	// QuestionCount is the fixed number of questions per interview.
	QuestionCount = 6
	// MaxRetries is the ceiling on how many times an interrupted interview
	// may be resumed.
	MaxRetries = 2
)

type InterviewSession struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionToken   string    `gorm:"type:varchar(64);uniqueIndex" json:"session_token"`
	InterviewerID  uuid.UUID `gorm:"type:uuid;index" json:"interviewer_id"`
	CandidateName  string    `gorm:"type:varchar(255)" json:"candidate_name"`
	CandidateEmail string    `gorm:"type:varchar(255)" json:"candidate_email"`
	CandidatePhone string    `gorm:"type:varchar(64)" json:"candidate_phone"`
	ResumeFilename string    `gorm:"type:varchar(255)" json:"resume_filename"`
	ResumeURL      string    `gorm:"type:text" json:"resume_url"`
	ResumeContent  string    `gorm:"type:text" json:"-"`
	ResumeSummary  string    `gorm:"type:jsonb" json:"resume_summary"`
	Role           string    `gorm:"type:varchar(128)" json:"role"`

	Status               string  `gorm:"type:varchar(32);default:created" json:"status"`
	CurrentQuestionIndex int     `gorm:"default:0" json:"current_question_index"`
	RetryCount           int     `gorm:"default:0" json:"retry_count"`
	TotalScore           float64 `gorm:"default:0" json:"total_score"`

	// Serialized JSON produced by the summary generator, stored and exposed
	// as text.
	AISummary        string `gorm:"column:ai_summary;type:text" json:"ai_summary"`
	StudentAISummary string `gorm:"column:student_ai_summary;type:text" json:"student_ai_summary"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Questions    []InterviewQuestion `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Answers      []InterviewAnswer   `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	ChatMessages []ChatMessage       `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"chat_messages,omitempty"`
}

func (s *InterviewSession) TableName() string {
	return "interview_sessions"
}

// DisplayStatus is the single place where the client-facing state is derived
// from the stored fields. Every endpoint that reports a session state must go
// through it; the retry ceiling overrides whatever status string is stored.
func (s *InterviewSession) DisplayStatus() string {
	if s.RetryCount >= MaxRetries {
		return StatusMaxRetries
	}
	return s.Status
}

// HasCandidateInfo reports whether all three identity fields required before
// the interview may start are present.
func (s *InterviewSession) HasCandidateInfo() bool {
	return s.CandidateName != "" && s.CandidateEmail != "" && s.CandidatePhone != ""
}
