package contract

import (
	"context"

	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/google/uuid"
)

// InterviewRepository persists sessions and their owned questions, answers
// and chat messages. Find methods return (nil, nil) when no row matches;
// list methods return question-number order where relevant.
//
// Transaction runs fn against a repository whose writes commit atomically:
// if fn returns an error every write inside it is rolled back. The state
// machine relies on this for its two compound write units (upsert answer +
// advance index, and complete session + store summary).
type InterviewRepository interface {
	CreateSession(ctx context.Context, session *model.InterviewSession) error
	SaveSession(ctx context.Context, session *model.InterviewSession) error
	DeleteSession(ctx context.Context, id uuid.UUID) error
	FindSessionByToken(ctx context.Context, token string) (*model.InterviewSession, error)
	FindSessionByID(ctx context.Context, id uuid.UUID) (*model.InterviewSession, error)
	FindSessionsByInterviewer(ctx context.Context, interviewerID uuid.UUID) ([]model.InterviewSession, error)

	CreateQuestions(ctx context.Context, questions []model.InterviewQuestion) error
	FindQuestions(ctx context.Context, sessionID uuid.UUID) ([]model.InterviewQuestion, error)
	FindQuestionByNumber(ctx context.Context, sessionID uuid.UUID, number int) (*model.InterviewQuestion, error)

	CreateAnswer(ctx context.Context, answer *model.InterviewAnswer) error
	SaveAnswer(ctx context.Context, answer *model.InterviewAnswer) error
	FindAnswers(ctx context.Context, sessionID uuid.UUID) ([]model.InterviewAnswer, error)
	FindAnswerByQuestion(ctx context.Context, questionID uuid.UUID) (*model.InterviewAnswer, error)

	CreateChatMessage(ctx context.Context, message *model.ChatMessage) error
	FindChatMessages(ctx context.Context, sessionID uuid.UUID) ([]model.ChatMessage, error)

	Transaction(ctx context.Context, fn func(repo InterviewRepository) error) error
}
