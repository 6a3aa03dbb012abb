package contract

import (
	"context"

	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/google/uuid"
)

// InterviewerRepository persists interviewer accounts. Find methods return
// (nil, nil) when no row matches.
type InterviewerRepository interface {
	Create(ctx context.Context, interviewer *model.Interviewer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Interviewer, error)
	FindByEmail(ctx context.Context, email string) (*model.Interviewer, error)
}
