package usecase

import (
	"context"
	"time"

	"github.com/fadilmartias/interview-assistant/internal/config"
	"github.com/fadilmartias/interview-assistant/internal/dto"
	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/fadilmartias/interview-assistant/internal/pkg/logger"
	"github.com/fadilmartias/interview-assistant/internal/pkg/mailer"
	"github.com/fadilmartias/interview-assistant/internal/repository/contract"
	"github.com/fadilmartias/interview-assistant/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	interviewers contract.InterviewerRepository
	interviews   contract.InterviewRepository
	mailer       mailer.IEmailService
	logger       logger.ILogger
}

func NewAuthUsecase(
	interviewers contract.InterviewerRepository,
	interviews contract.InterviewRepository,
	mailer mailer.IEmailService,
	logger logger.ILogger,
) *AuthUsecase {
	return &AuthUsecase{
		interviewers: interviewers,
		interviews:   interviews,
		mailer:       mailer,
		logger:       logger,
	}
}

func (u *AuthUsecase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.InterviewerDTO, error) {
	existing, err := u.interviewers.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ConflictError{Reason: "email already registered"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	interviewer := model.Interviewer{
		Email:          req.Email,
		Username:       req.Username,
		HashedPassword: string(hashed),
		FullName:       req.FullName,
		IsActive:       true,
	}
	if err := u.interviewers.Create(ctx, &interviewer); err != nil {
		return nil, err
	}

	out := dto.NewInterviewerDTO(&interviewer)
	return &out, nil
}

func (u *AuthUsecase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	interviewer, err := u.interviewers.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if interviewer == nil || !interviewer.IsActive {
		return nil, UnauthorizedError{Reason: "invalid credentials"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(interviewer.HashedPassword), []byte(req.Password)); err != nil {
		return nil, UnauthorizedError{Reason: "invalid credentials"}
	}

	jwtConfig := config.LoadJWTConfig()
	claims := jwt.MapClaims{
		"sub": interviewer.ID.String(),
		"exp": time.Now().Add(time.Duration(jwtConfig.ExpireMinutes) * time.Minute).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtConfig.Secret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		Interviewer: dto.NewInterviewerDTO(interviewer),
	}, nil
}

func (u *AuthUsecase) Me(ctx context.Context, interviewerID uuid.UUID) (*dto.InterviewerDTO, error) {
	interviewer, err := u.interviewers.FindByID(ctx, interviewerID)
	if err != nil {
		return nil, err
	}
	if interviewer == nil {
		return nil, NotFoundError{Resource: "interviewer"}
	}
	out := dto.NewInterviewerDTO(interviewer)
	return &out, nil
}

// CreateSession provisions an interview and, when the candidate email is
// known, sends the invitation. Mail failure never fails the call; the
// response reports whether the mail went out.
func (u *AuthUsecase) CreateSession(ctx context.Context, interviewerID uuid.UUID, req dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	interviewer, err := u.interviewers.FindByID(ctx, interviewerID)
	if err != nil {
		return nil, err
	}
	if interviewer == nil {
		return nil, NotFoundError{Resource: "interviewer"}
	}

	token, err := util.GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	session := model.InterviewSession{
		SessionToken:   token,
		InterviewerID:  interviewerID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		CandidatePhone: req.CandidatePhone,
		Role:           req.Role,
		Status:         model.StatusCreated,
	}
	if err := u.interviews.CreateSession(ctx, &session); err != nil {
		return nil, err
	}

	interviewLink := config.LoadAppConfig().ClientURL + "/interview/" + token

	emailSent := false
	if session.CandidateEmail != "" && u.mailer != nil {
		if err := u.mailer.SendInterviewLink(session.CandidateEmail, session.CandidateName, interviewLink, interviewer.FullName); err != nil {
			u.logger.Warn("auth_usecase", "invitation email failed, link must be shared manually", map[string]interface{}{
				"session_id": session.ID.String(),
				"error":      err.Error(),
			})
		} else {
			emailSent = true
		}
	}

	return &dto.CreateSessionResponse{
		Session:       dto.NewSessionDTO(&session),
		InterviewLink: interviewLink,
		EmailSent:     emailSent,
	}, nil
}
