package usecase

import (
	"context"

	"github.com/fadilmartias/interview-assistant/internal/dto"
	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/fadilmartias/interview-assistant/internal/repository/contract"
	"github.com/fadilmartias/interview-assistant/internal/response"
	"github.com/google/uuid"
)

type DashboardUsecase struct {
	repo contract.InterviewRepository
}

func NewDashboardUsecase(repo contract.InterviewRepository) *DashboardUsecase {
	return &DashboardUsecase{repo: repo}
}

// Sessions lists the interviewer's sessions newest first, one page at a time.
func (u *DashboardUsecase) Sessions(ctx context.Context, interviewerID uuid.UUID, page, pageSize int) ([]dto.SessionDTO, *response.Pagination, error) {
	sessions, err := u.repo.FindSessionsByInterviewer(ctx, interviewerID)
	if err != nil {
		return nil, nil, err
	}

	pagination := response.NewPagination(page, pageSize, int64(len(sessions)))
	out := make([]dto.SessionDTO, 0, pagination.PageSize)
	if pagination.From > 0 {
		for _, s := range sessions[pagination.From-1 : pagination.To] {
			out = append(out, dto.NewSessionDTO(&s))
		}
	}
	return out, pagination, nil
}

// SessionDetails returns one session with its full transcript. A session
// owned by another interviewer is reported as absent, not as forbidden.
func (u *DashboardUsecase) SessionDetails(ctx context.Context, interviewerID, sessionID uuid.UUID) (*dto.SessionDetailsResponse, error) {
	session, err := u.repo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.InterviewerID != interviewerID {
		return nil, NotFoundError{Resource: "interview session"}
	}

	questions, err := u.repo.FindQuestions(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	answers, err := u.repo.FindAnswers(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	messages, err := u.repo.FindChatMessages(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	details := &dto.SessionDetailsResponse{
		Session:      dto.NewSessionDTO(session),
		Questions:    make([]dto.QuestionDTO, 0, len(questions)),
		Answers:      make([]dto.AnswerDTO, 0, len(answers)),
		ChatMessages: make([]dto.ChatMessageDTO, 0, len(messages)),
	}
	for i := range questions {
		details.Questions = append(details.Questions, dto.NewQuestionDTO(&questions[i]))
	}
	for i := range answers {
		details.Answers = append(details.Answers, dto.NewAnswerDTO(&answers[i]))
	}
	for i := range messages {
		details.ChatMessages = append(details.ChatMessages, dto.NewChatMessageDTO(&messages[i]))
	}
	return details, nil
}

// Stats aggregates over display statuses, so sessions that hit the retry
// ceiling are counted under max_retries_reached regardless of their stored
// status. The average only covers completed interviews.
func (u *DashboardUsecase) Stats(ctx context.Context, interviewerID uuid.UUID) (*dto.DashboardStats, error) {
	sessions, err := u.repo.FindSessionsByInterviewer(ctx, interviewerID)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStats{TotalSessions: len(sessions)}
	scoreSum := 0.0
	completedScored := 0
	for i := range sessions {
		s := &sessions[i]
		switch s.DisplayStatus() {
		case model.StatusCompleted:
			stats.Completed++
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusCreated:
			stats.Created++
		case model.StatusMaxRetries:
			stats.MaxRetriesReached++
		}
		if s.Status == model.StatusCompleted {
			scoreSum += s.TotalScore
			completedScored++
		}
	}

	if completedScored > 0 {
		stats.AverageScore = round2(scoreSum / float64(completedScored))
	}
	if stats.TotalSessions > 0 {
		stats.CompletionRate = round1(float64(stats.Completed) / float64(stats.TotalSessions) * 100)
	}
	return stats, nil
}

func (u *DashboardUsecase) DeleteSession(ctx context.Context, interviewerID, sessionID uuid.UUID) error {
	session, err := u.repo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil || session.InterviewerID != interviewerID {
		return NotFoundError{Resource: "interview session"}
	}
	return u.repo.DeleteSession(ctx, sessionID)
}
