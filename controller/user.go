package controller

import (
	"errors"

	"github.com/galpartuk/Ironvest-assignment/dtos/response"
	"github.com/galpartuk/Ironvest-assignment/services"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	Me(c *fiber.Ctx) error
	AuditLogs(c *fiber.Ctx) error
}

// auditLogsLimit bounds the dashboard read; newest entries first.
const auditLogsLimit = 20

type UserController struct {
	authService  services.IAuthService
	auditService services.IAuditService
}

func NewUserController(authService services.IAuthService, auditService services.IAuditService) IUserController {
	return &UserController{authService: authService, auditService: auditService}
}

// Me resolves the session subject back to a stored principal. A valid
// signature over a subject with no row is still unauthenticated.
func (uc *UserController) Me(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)

	user, err := uc.authService.CurrentUser(subject)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(response.AuthResponse{Success: false, Error: "Unauthorized"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(response.AuthResponse{Success: false, Error: "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(response.AuthResponse{Success: true, User: user})
}

func (uc *UserController) AuditLogs(c *fiber.Ctx) error {
	subject := c.Locals("subject").(string)

	logs, err := uc.auditService.Recent(subject, auditLogsLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.AuditLogsResponse{Success: false, Error: "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(response.AuditLogsResponse{Success: true, Logs: logs})
}
