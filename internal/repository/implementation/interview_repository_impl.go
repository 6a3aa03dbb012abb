package implementation

import (
	"context"
	"errors"

	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/fadilmartias/interview-assistant/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewRepositoryImpl struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) contract.InterviewRepository {
	return &InterviewRepositoryImpl{db: db}
}

func (r *InterviewRepositoryImpl) CreateSession(ctx context.Context, session *model.InterviewSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *InterviewRepositoryImpl) SaveSession(ctx context.Context, session *model.InterviewSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *InterviewRepositoryImpl) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.InterviewSession{}, "id = ?", id).Error
}

func (r *InterviewRepositoryImpl) FindSessionByToken(ctx context.Context, token string) (*model.InterviewSession, error) {
	var m model.InterviewSession
	if err := r.db.WithContext(ctx).First(&m, "session_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *InterviewRepositoryImpl) FindSessionByID(ctx context.Context, id uuid.UUID) (*model.InterviewSession, error) {
	var m model.InterviewSession
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *InterviewRepositoryImpl) FindSessionsByInterviewer(ctx context.Context, interviewerID uuid.UUID) ([]model.InterviewSession, error) {
	var sessions []model.InterviewSession
	err := r.db.WithContext(ctx).
		Where("interviewer_id = ?", interviewerID).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *InterviewRepositoryImpl) CreateQuestions(ctx context.Context, questions []model.InterviewQuestion) error {
	return r.db.WithContext(ctx).Create(&questions).Error
}

func (r *InterviewRepositoryImpl) FindQuestions(ctx context.Context, sessionID uuid.UUID) ([]model.InterviewQuestion, error) {
	var questions []model.InterviewQuestion
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("question_number ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *InterviewRepositoryImpl) FindQuestionByNumber(ctx context.Context, sessionID uuid.UUID, number int) (*model.InterviewQuestion, error) {
	var m model.InterviewQuestion
	err := r.db.WithContext(ctx).
		First(&m, "session_id = ? AND question_number = ?", sessionID, number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *InterviewRepositoryImpl) CreateAnswer(ctx context.Context, answer *model.InterviewAnswer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

func (r *InterviewRepositoryImpl) SaveAnswer(ctx context.Context, answer *model.InterviewAnswer) error {
	return r.db.WithContext(ctx).Save(answer).Error
}

func (r *InterviewRepositoryImpl) FindAnswers(ctx context.Context, sessionID uuid.UUID) ([]model.InterviewAnswer, error) {
	var answers []model.InterviewAnswer
	err := r.db.WithContext(ctx).
		Joins("JOIN interview_questions ON interview_questions.id = interview_answers.question_id").
		Where("interview_answers.session_id = ?", sessionID).
		Order("interview_questions.question_number ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *InterviewRepositoryImpl) FindAnswerByQuestion(ctx context.Context, questionID uuid.UUID) (*model.InterviewAnswer, error) {
	var m model.InterviewAnswer
	if err := r.db.WithContext(ctx).First(&m, "question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *InterviewRepositoryImpl) CreateChatMessage(ctx context.Context, message *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *InterviewRepositoryImpl) FindChatMessages(ctx context.Context, sessionID uuid.UUID) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *InterviewRepositoryImpl) Transaction(ctx context.Context, fn func(repo contract.InterviewRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&InterviewRepositoryImpl{db: tx})
	})
}
