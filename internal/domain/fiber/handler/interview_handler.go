package handler

import (
	"io"
	"time"

	"github.com/fadilmartias/interview-assistant/internal/dto"
	"github.com/fadilmartias/interview-assistant/internal/middleware"
	"github.com/fadilmartias/interview-assistant/internal/usecase"
	"github.com/fadilmartias/interview-assistant/internal/util"

	"github.com/gofiber/fiber/v2"
)

const maxResumeSize = 5 * 1024 * 1024

type InterviewHandler struct {
	uc *usecase.InterviewUsecase
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/interview/:token")
	group.Get("/", h.Info)
	group.Post("/upload-resume", middleware.RateLimiter(5, time.Minute), h.UploadResume)
	group.Post("/candidate-info", h.CandidateInfo)
	group.Post("/start-interview", h.StartInterview)
	group.Post("/submit-answer", h.SubmitAnswer)
	group.Post("/continue-interview", h.ContinueInterview)
	group.Get("/continue-status", h.ContinueStatus)
	group.Post("/chat", h.AddChatMessage)
	group.Get("/chat", h.ChatMessages)
}

func (h *InterviewHandler) Info(c *fiber.Ctx) error {
	session, err := h.uc.GetSession(c.Context(), c.Params("token"))
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    session,
	})
}

func (h *InterviewHandler) UploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		}, err)
	}
	if file.Size > maxResumeSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file size is too large (max 5MB)",
		})
	}

	opened, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read resume file",
		}, err)
	}
	defer opened.Close()
	content, err := io.ReadAll(opened)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read resume file",
		}, err)
	}

	result, err := h.uc.UploadResume(c.Context(), c.Params("token"), file.Filename, content)
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Resume processed",
		Data:    result,
	})
}

func (h *InterviewHandler) CandidateInfo(c *fiber.Ctx) error {
	var req dto.CandidateInfoRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	session, err := h.uc.UpdateCandidateInfo(c.Context(), c.Params("token"), req)
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Candidate info saved",
		Data:    session,
	})
}

func (h *InterviewHandler) StartInterview(c *fiber.Ctx) error {
	result, err := h.uc.StartInterview(c.Context(), c.Params("token"))
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Interview started",
		Data:    result,
	})
}

func (h *InterviewHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	result, err := h.uc.SubmitAnswer(c.Context(), c.Params("token"), req)
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Answer recorded",
		Data:    result,
	})
}

func (h *InterviewHandler) ContinueInterview(c *fiber.Ctx) error {
	result, err := h.uc.ContinueInterview(c.Context(), c.Params("token"))
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Interview resumed",
		Data:    result,
	})
}

func (h *InterviewHandler) ContinueStatus(c *fiber.Ctx) error {
	result, err := h.uc.ContinueStatus(c.Context(), c.Params("token"))
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    result,
	})
}

func (h *InterviewHandler) AddChatMessage(c *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	message, err := h.uc.AddChatMessage(c.Context(), c.Params("token"), req)
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Message saved",
		Data:    message,
	})
}

func (h *InterviewHandler) ChatMessages(c *fiber.Ctx) error {
	messages, err := h.uc.GetChatMessages(c.Context(), c.Params("token"))
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    messages,
	})
}
