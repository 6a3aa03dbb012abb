package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/fadilmartias/interview-assistant/internal/repository/contract"
	"github.com/fadilmartias/interview-assistant/internal/repository/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDashboardSessions(t *testing.T, repo contract.InterviewRepository, interviewerID uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	sessions := []model.InterviewSession{
		{SessionToken: "sess_a", InterviewerID: interviewerID, Status: model.StatusCompleted, TotalScore: 8},
		{SessionToken: "sess_b", InterviewerID: interviewerID, Status: model.StatusCompleted, TotalScore: 6},
		{SessionToken: "sess_c", InterviewerID: interviewerID, Status: model.StatusInProgress},
		{SessionToken: "sess_d", InterviewerID: interviewerID, Status: model.StatusInProgress, RetryCount: model.MaxRetries},
		{SessionToken: "sess_e", InterviewerID: interviewerID, Status: model.StatusCreated},
		{SessionToken: "sess_other", InterviewerID: uuid.New(), Status: model.StatusCompleted, TotalScore: 10},
	}
	for i := range sessions {
		require.NoError(t, repo.CreateSession(ctx, &sessions[i]))
	}
}

func TestDashboardStats(t *testing.T) {
	repo := memory.NewInterviewRepository()
	interviewerID := uuid.New()
	seedDashboardSessions(t, repo, interviewerID)
	uc := NewDashboardUsecase(repo)

	stats, err := uc.Stats(context.Background(), interviewerID)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalSessions)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 1, stats.Created)
	assert.Equal(t, 1, stats.MaxRetriesReached)
	assert.Equal(t, 7.0, stats.AverageScore)
	assert.Equal(t, 40.0, stats.CompletionRate)
}

func TestDashboardStatsEmpty(t *testing.T) {
	uc := NewDashboardUsecase(memory.NewInterviewRepository())

	stats, err := uc.Stats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSessions)
	assert.Equal(t, 0.0, stats.AverageScore)
	assert.Equal(t, 0.0, stats.CompletionRate)
}

func TestDashboardSessionsPaginated(t *testing.T) {
	repo := memory.NewInterviewRepository()
	interviewerID := uuid.New()
	seedDashboardSessions(t, repo, interviewerID)
	uc := NewDashboardUsecase(repo)

	page1, pagination, err := uc.Sessions(context.Background(), interviewerID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 2)
	assert.Equal(t, int64(5), pagination.TotalItems)
	assert.Equal(t, int64(3), pagination.TotalPages)
	assert.True(t, pagination.HasMore)

	page3, pagination, err := uc.Sessions(context.Background(), interviewerID, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
	assert.False(t, pagination.HasMore)

	// Sessions that hit the retry ceiling surface the derived status.
	all, _, err := uc.Sessions(context.Background(), interviewerID, 1, 10)
	require.NoError(t, err)
	statuses := map[string]int{}
	for _, s := range all {
		statuses[s.Status]++
	}
	assert.Equal(t, 1, statuses[model.StatusMaxRetries])
}

func TestSessionDetailsOwnership(t *testing.T) {
	repo := memory.NewInterviewRepository()
	owner := uuid.New()
	stranger := uuid.New()
	ctx := context.Background()

	session := model.InterviewSession{SessionToken: "sess_owned", InterviewerID: owner, Status: model.StatusCompleted}
	require.NoError(t, repo.CreateSession(ctx, &session))
	require.NoError(t, repo.CreateQuestions(ctx, []model.InterviewQuestion{
		{SessionID: session.ID, QuestionNumber: 1, Difficulty: model.DifficultyEasy, QuestionText: "What is a closure?", TimeLimit: 20},
	}))

	uc := NewDashboardUsecase(repo)

	details, err := uc.SessionDetails(ctx, owner, session.ID)
	require.NoError(t, err)
	assert.Len(t, details.Questions, 1)

	_, err = uc.SessionDetails(ctx, stranger, session.ID)
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteSessionOwnership(t *testing.T) {
	repo := memory.NewInterviewRepository()
	owner := uuid.New()
	ctx := context.Background()

	session := model.InterviewSession{SessionToken: "sess_del", InterviewerID: owner}
	require.NoError(t, repo.CreateSession(ctx, &session))

	uc := NewDashboardUsecase(repo)

	var notFound NotFoundError
	err := uc.DeleteSession(ctx, uuid.New(), session.ID)
	require.ErrorAs(t, err, &notFound)

	require.NoError(t, uc.DeleteSession(ctx, owner, session.ID))
	stored, err := repo.FindSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
