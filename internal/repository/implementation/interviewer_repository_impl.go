package implementation

import (
	"context"
	"errors"

	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/fadilmartias/interview-assistant/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewerRepositoryImpl struct {
	db *gorm.DB
}

func NewInterviewerRepository(db *gorm.DB) contract.InterviewerRepository {
	return &InterviewerRepositoryImpl{db: db}
}

func (r *InterviewerRepositoryImpl) Create(ctx context.Context, interviewer *model.Interviewer) error {
	return r.db.WithContext(ctx).Create(interviewer).Error
}

func (r *InterviewerRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Interviewer, error) {
	var m model.Interviewer
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *InterviewerRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.Interviewer, error) {
	var m model.Interviewer
	if err := r.db.WithContext(ctx).First(&m, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
