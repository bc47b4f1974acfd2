package controller

import (
	"errors"
	"time"

	"github.com/galpartuk/Ironvest-assignment/actionid"
	"github.com/galpartuk/Ironvest-assignment/config"
	"github.com/galpartuk/Ironvest-assignment/dtos/request"
	"github.com/galpartuk/Ironvest-assignment/dtos/response"
	"github.com/galpartuk/Ironvest-assignment/services"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	Register(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	Enroll(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
	UserCheck(c *fiber.Ctx) error
}

type AuthController struct {
	authService services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{authService: service}
}

// statusForError translates service outcomes into HTTP statuses. Raw
// transport or store errors never reach the client body.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrAlreadyEnrolled):
		return fiber.StatusConflict, err.Error()
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound, err.Error()
	}
	var rejection *services.RejectionError
	if errors.As(err, &rejection) {
		return fiber.StatusUnauthorized, rejection.Message
	}
	var provider *actionid.ProviderError
	if errors.As(err, &provider) {
		return fiber.StatusInternalServerError, "ActionID error: validate failed"
	}
	return fiber.StatusInternalServerError, "Internal server error"
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     config.Conf.Application.Security.CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   config.Conf.Application.Server.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		MaxAge:   config.Conf.Application.Security.TokenValidityInSeconds,
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     config.Conf.Application.Security.CookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   config.Conf.Application.Server.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	req := c.Locals("body").(*request.RegisterRequest)

	user, token, err := ac.authService.Register(c.UserContext(), req)
	if err != nil {
		status, message := statusForError(err)
		return c.Status(status).JSON(response.AuthResponse{Success: false, Error: message})
	}

	setSessionCookie(c, token)
	return c.Status(fiber.StatusOK).JSON(response.AuthResponse{Success: true, User: user})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	req := c.Locals("body").(*request.LoginRequest)

	user, token, err := ac.authService.Login(c.UserContext(), req)
	if err != nil {
		status, message := statusForError(err)
		return c.Status(status).JSON(response.AuthResponse{Success: false, Error: message})
	}

	setSessionCookie(c, token)
	return c.Status(fiber.StatusOK).JSON(response.AuthResponse{Success: true, User: user})
}

func (ac *AuthController) Enroll(c *fiber.Ctx) error {
	req := c.Locals("body").(*request.EnrollRequest)

	user, err := ac.authService.Enroll(c.UserContext(), req)
	if err != nil {
		status, message := statusForError(err)
		return c.Status(status).JSON(response.AuthResponse{Success: false, Error: message})
	}

	return c.Status(fiber.StatusOK).JSON(response.AuthResponse{Success: true, User: user})
}

// Logout clears the session cookie. There is no server-side state to
// revoke; the credential simply stops being presented.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	clearSessionCookie(c)
	return c.Status(fiber.StatusOK).JSON(response.AuthResponse{Success: true})
}

func (ac *AuthController) UserCheck(c *fiber.Ctx) error {
	req := c.Locals("body").(*request.UserCheckRequest)

	exists, err := ac.authService.CheckUser(req)
	if err != nil {
		status, message := statusForError(err)
		return c.Status(status).JSON(response.UserCheckResponse{Success: false, Exists: exists, Error: message})
	}

	return c.Status(fiber.StatusOK).JSON(response.UserCheckResponse{Success: true, Exists: exists})
}
