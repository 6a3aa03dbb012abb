package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fadilmartias/interview-assistant/internal/dto"
	"github.com/fadilmartias/interview-assistant/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) SendInterviewLink(toEmail, candidateName, interviewLink, interviewerName string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, toEmail)
	return nil
}

func newTestAuthUsecase(mail *recordingMailer) *AuthUsecase {
	return NewAuthUsecase(
		memory.NewInterviewerRepository(),
		memory.NewInterviewRepository(),
		mail,
		loggerNop(),
	)
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:    "hiring@example.com",
		Username: "hiring-manager",
		Password: "super-secret-pw",
		FullName: "Hiring Manager",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	uc := newTestAuthUsecase(&recordingMailer{})
	ctx := context.Background()

	interviewer, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "hiring@example.com", interviewer.Email)

	login, err := uc.Login(ctx, dto.LoginRequest{
		Email:    "hiring@example.com",
		Password: "super-secret-pw",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, "bearer", login.TokenType)
	assert.Equal(t, interviewer.ID, login.Interviewer.ID)
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	uc := newTestAuthUsecase(&recordingMailer{})
	ctx := context.Background()

	_, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = uc.Register(ctx, registerRequest())
	var conflict ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestLoginWrongPassword(t *testing.T) {
	uc := newTestAuthUsecase(&recordingMailer{})
	ctx := context.Background()

	_, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{
		Email:    "hiring@example.com",
		Password: "wrong",
	})
	var unauthorized UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.ErrorAs(t, err, &unauthorized)
}

func TestCreateSessionSendsInvitation(t *testing.T) {
	mail := &recordingMailer{}
	uc := newTestAuthUsecase(mail)
	ctx := context.Background()

	interviewer, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)

	created, err := uc.CreateSession(ctx, interviewer.ID, dto.CreateSessionRequest{
		CandidateName:  "Jane Candidate",
		CandidateEmail: "jane@example.com",
		Role:           "Full Stack Developer",
	})
	require.NoError(t, err)
	assert.True(t, created.EmailSent)
	assert.Equal(t, []string{"jane@example.com"}, mail.sent)
	assert.True(t, strings.HasPrefix(created.Session.SessionToken, "sess_"))
	assert.Contains(t, created.InterviewLink, created.Session.SessionToken)
	assert.Equal(t, "created", created.Session.Status)
}

func TestCreateSessionMailFailureAbsorbed(t *testing.T) {
	mail := &recordingMailer{err: errors.New("smtp down")}
	uc := newTestAuthUsecase(mail)
	ctx := context.Background()

	interviewer, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)

	created, err := uc.CreateSession(ctx, interviewer.ID, dto.CreateSessionRequest{
		CandidateEmail: "jane@example.com",
	})
	require.NoError(t, err)
	assert.False(t, created.EmailSent)
	assert.NotEmpty(t, created.InterviewLink)
}

func TestCreateSessionWithoutEmailSkipsMail(t *testing.T) {
	mail := &recordingMailer{}
	uc := newTestAuthUsecase(mail)
	ctx := context.Background()

	interviewer, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)

	created, err := uc.CreateSession(ctx, interviewer.ID, dto.CreateSessionRequest{})
	require.NoError(t, err)
	assert.False(t, created.EmailSent)
	assert.Empty(t, mail.sent)
}
