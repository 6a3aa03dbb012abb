package handler

import (
	"github.com/fadilmartias/interview-assistant/internal/dto"
	"github.com/fadilmartias/interview-assistant/internal/middleware"
	"github.com/fadilmartias/interview-assistant/internal/usecase"
	"github.com/fadilmartias/interview-assistant/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DashboardHandler struct {
	dashboard *usecase.DashboardUsecase
	auth      *usecase.AuthUsecase
}

func NewDashboardHandler(dashboard *usecase.DashboardUsecase, auth *usecase.AuthUsecase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, auth: auth}
}

func (h *DashboardHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/dashboard", middleware.RequireAuth())
	group.Post("/sessions", h.CreateSession)
	group.Get("/sessions", h.Sessions)
	group.Get("/sessions/:id", h.SessionDetails)
	group.Delete("/sessions/:id", h.DeleteSession)
	group.Get("/stats", h.Stats)
}

func (h *DashboardHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	created, err := h.auth.CreateSession(c.Context(), middleware.InterviewerID(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Interview session created",
		Data:    created,
	})
}

func (h *DashboardHandler) Sessions(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 10)

	sessions, pagination, err := h.dashboard.Sessions(c.Context(), middleware.InterviewerID(c), page, pageSize)
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success",
		Data:       sessions,
		Pagination: pagination,
	})
}

func (h *DashboardHandler) SessionDetails(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid session id",
		}, err)
	}

	details, err := h.dashboard.SessionDetails(c.Context(), middleware.InterviewerID(c), sessionID)
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    details,
	})
}

func (h *DashboardHandler) DeleteSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid session id",
		}, err)
	}

	if err := h.dashboard.DeleteSession(c.Context(), middleware.InterviewerID(c), sessionID); err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Interview session deleted",
	})
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboard.Stats(c.Context(), middleware.InterviewerID(c))
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    stats,
	})
}
