package middleware

import (
	"strings"

	"github.com/fadilmartias/interview-assistant/internal/config"
	"github.com/fadilmartias/interview-assistant/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RequireAuth validates the bearer token and stores the interviewer id in
// locals under "interviewer_id".
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "missing bearer token",
			})
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(config.LoadJWTConfig().Secret), nil
		})
		if err != nil || !token.Valid {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "invalid or expired token",
			}, err)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "invalid token claims",
			})
		}
		sub, _ := claims["sub"].(string)
		interviewerID, err := uuid.Parse(sub)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "invalid token subject",
			}, err)
		}

		c.Locals("interviewer_id", interviewerID)
		return c.Next()
	}
}

// InterviewerID reads the authenticated interviewer id set by RequireAuth.
func InterviewerID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals("interviewer_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
