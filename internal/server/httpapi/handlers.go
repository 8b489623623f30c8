package httpapi

import (
	"errors"

	"github.com/dmaslov/passport/internal/common"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) Signup(c *fiber.Ctx) error {

	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
		})
	}

	s.logger.Info(c.UserContext(), "Signup request")

	user, err := s.users.Register(c.UserContext(), req.Email, req.Password, req.Name)
	if err != nil {
		return s.mapError(c, err)
	}

	s.logger.Info(c.UserContext(), "Registered", "email", user.Email)
	return c.Status(fiber.StatusCreated).JSON(UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	})
}

func (s *Server) Login(c *fiber.Ctx) error {

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
		})
	}

	token, err := s.users.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return s.mapError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresIn:   token.ExpiresIn,
	})
}

func (s *Server) Me(c *fiber.Ctx) error {
	claims := claimsFromCtx(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "invalid token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(MeResponse{
		UserID: claims.Subject,
		Email:  claims.Email,
	})
}

// mapError translates the service's error kinds into status codes. The
// invalid-credentials body is identical for unknown email and wrong
// password; only persistence-class failures reach the error log, with
// digest corruption called out separately from store trouble.
func (s *Server) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "please provide all the required fields",
		})
	case errors.Is(err, common.ErrorAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "already_exists",
			Message: "user already exists",
		})
	case errors.Is(err, common.ErrorInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "invalid_credentials",
			Message: "invalid credentials",
		})
	case errors.Is(err, common.ErrInvalidHash):
		s.logger.Error(c.UserContext(), "Stored password digest unreadable", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "internal error",
		})
	default:
		s.logger.Error(c.UserContext(), "Request failed", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "internal error",
		})
	}
}
