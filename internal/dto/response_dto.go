package dto

import (
	"time"

	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/google/uuid"
)

type SessionDTO struct {
	ID                   uuid.UUID  `json:"id"`
	SessionToken         string     `json:"session_token"`
	CandidateName        string     `json:"candidate_name"`
	CandidateEmail       string     `json:"candidate_email"`
	CandidatePhone       string     `json:"candidate_phone"`
	Role                 string     `json:"role"`
	ResumeFilename       string     `json:"resume_filename"`
	ResumeURL            string     `json:"resume_url"`
	Status               string     `json:"status"`
	CurrentQuestionIndex int        `json:"current_question_index"`
	RetryCount           int        `json:"retry_count"`
	TotalScore           float64    `json:"total_score"`
	AISummary            string     `json:"ai_summary"`
	CreatedAt            time.Time  `json:"created_at"`
	StartedAt            *time.Time `json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at"`
}

// NewSessionDTO maps a stored session to its client shape. The status field
// always carries the derived display status, never the raw column.
func NewSessionDTO(s *model.InterviewSession) SessionDTO {
	return SessionDTO{
		ID:                   s.ID,
		SessionToken:         s.SessionToken,
		CandidateName:        s.CandidateName,
		CandidateEmail:       s.CandidateEmail,
		CandidatePhone:       s.CandidatePhone,
		Role:                 s.Role,
		ResumeFilename:       s.ResumeFilename,
		ResumeURL:            s.ResumeURL,
		Status:               s.DisplayStatus(),
		CurrentQuestionIndex: s.CurrentQuestionIndex,
		RetryCount:           s.RetryCount,
		TotalScore:           s.TotalScore,
		AISummary:            s.AISummary,
		CreatedAt:            s.CreatedAt,
		StartedAt:            s.StartedAt,
		CompletedAt:          s.CompletedAt,
	}
}

type QuestionDTO struct {
	ID             uuid.UUID `json:"id"`
	QuestionNumber int       `json:"question_number"`
	Difficulty     string    `json:"difficulty"`
	QuestionText   string    `json:"question_text"`
	TimeLimit      int       `json:"time_limit"`
}

func NewQuestionDTO(q *model.InterviewQuestion) QuestionDTO {
	return QuestionDTO{
		ID:             q.ID,
		QuestionNumber: q.QuestionNumber,
		Difficulty:     q.Difficulty,
		QuestionText:   q.QuestionText,
		TimeLimit:      q.TimeLimit,
	}
}

type AnswerDTO struct {
	ID          uuid.UUID `json:"id"`
	QuestionID  uuid.UUID `json:"question_id"`
	AnswerText  string    `json:"answer_text"`
	TimeTaken   int       `json:"time_taken"`
	Score       *float64  `json:"score"`
	AIFeedback  string    `json:"ai_feedback"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func NewAnswerDTO(a *model.InterviewAnswer) AnswerDTO {
	return AnswerDTO{
		ID:          a.ID,
		QuestionID:  a.QuestionID,
		AnswerText:  a.AnswerText,
		TimeTaken:   a.TimeTaken,
		Score:       a.Score,
		AIFeedback:  a.AIFeedback,
		SubmittedAt: a.SubmittedAt,
	}
}

type EvaluationDTO struct {
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

type SubmitAnswerResponse struct {
	Evaluation           EvaluationDTO `json:"evaluation"`
	CurrentQuestionIndex int           `json:"current_question_index"`
	InterviewComplete    bool          `json:"interview_complete"`
	NextQuestion         *QuestionDTO  `json:"next_question,omitempty"`
	// FinalSummary carries the serialized summary once the last answer lands.
	FinalSummary string `json:"final_summary,omitempty"`
}

type ContinueResponse struct {
	Session         SessionDTO    `json:"session"`
	Questions       []QuestionDTO `json:"questions"`
	Answers         []AnswerDTO   `json:"answers"`
	CurrentQuestion *QuestionDTO  `json:"current_question,omitempty"`
}

type ContinueStatusResponse struct {
	CanContinue      bool   `json:"can_continue"`
	Status           string `json:"status"`
	RetryCount       int    `json:"retry_count"`
	RetriesRemaining int    `json:"retries_remaining"`
	AllAnswered      bool   `json:"all_answered"`
	// NextQuestionNumber is the first unanswered question, 0 when none apply.
	NextQuestionNumber int    `json:"next_question_number"`
	Reason             string `json:"reason,omitempty"`
}

type ResumeUploadResponse struct {
	ResumeURL     string   `json:"resume_url"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	MissingFields []string `json:"missing_fields"`
}

type CreateSessionResponse struct {
	Session       SessionDTO `json:"session"`
	InterviewLink string     `json:"interview_link"`
	EmailSent     bool       `json:"email_sent"`
}

type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	Interviewer InterviewerDTO `json:"interviewer"`
}

type InterviewerDTO struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
}

func NewInterviewerDTO(i *model.Interviewer) InterviewerDTO {
	return InterviewerDTO{
		ID:       i.ID,
		Email:    i.Email,
		Username: i.Username,
		FullName: i.FullName,
	}
}

type ChatMessageDTO struct {
	ID          uuid.UUID `json:"id"`
	Sender      string    `json:"sender"`
	Message     string    `json:"message"`
	MessageType string    `json:"message_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewChatMessageDTO(m *model.ChatMessage) ChatMessageDTO {
	return ChatMessageDTO{
		ID:          m.ID,
		Sender:      m.Sender,
		Message:     m.Message,
		MessageType: m.MessageType,
		Timestamp:   m.Timestamp,
	}
}

type SessionDetailsResponse struct {
	Session      SessionDTO       `json:"session"`
	Questions    []QuestionDTO    `json:"questions"`
	Answers      []AnswerDTO      `json:"answers"`
	ChatMessages []ChatMessageDTO `json:"chat_messages"`
}

type DashboardStats struct {
	TotalSessions     int     `json:"total_sessions"`
	Completed         int     `json:"completed"`
	InProgress        int     `json:"in_progress"`
	Created           int     `json:"created"`
	MaxRetriesReached int     `json:"max_retries_reached"`
	AverageScore      float64 `json:"average_score"`
	CompletionRate    float64 `json:"completion_rate"`
}
