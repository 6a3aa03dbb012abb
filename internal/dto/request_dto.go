package dto

// Request bodies. Validation tags are enforced by the shared validator in the
// handler layer before any usecase runs.

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateSessionRequest struct {
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email" validate:"omitempty,email"`
	CandidatePhone string `json:"candidate_phone"`
	Role           string `json:"role"`
}

type CandidateInfoRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type SubmitAnswerRequest struct {
	QuestionNumber int `json:"question_number" validate:"required,min=1"`
	// Empty answer text is a valid submission: an expired timer still counts
	// as an attempt and is scored accordingly.
	AnswerText string `json:"answer_text"`
	TimeTaken  int    `json:"time_taken" validate:"min=0"`
}

type ChatMessageRequest struct {
	Sender      string `json:"sender" validate:"required,oneof=user assistant"`
	Message     string `json:"message" validate:"required"`
	MessageType string `json:"message_type" validate:"omitempty,oneof=text system answer"`
}
