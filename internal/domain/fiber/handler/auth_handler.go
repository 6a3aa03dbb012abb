package handler

import (
	"github.com/fadilmartias/interview-assistant/internal/dto"
	"github.com/fadilmartias/interview-assistant/internal/middleware"
	"github.com/fadilmartias/interview-assistant/internal/usecase"
	"github.com/fadilmartias/interview-assistant/internal/util"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Get("/me", middleware.RequireAuth(), h.Me)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	interviewer, err := h.uc.Register(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Account created",
		Data:    interviewer,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	login, err := h.uc.Login(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Login successful",
		Data:    login,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	interviewer, err := h.uc.Me(c.Context(), middleware.InterviewerID(c))
	if err != nil {
		return writeError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    interviewer,
	})
}
