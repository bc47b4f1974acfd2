package main

import (
	"time"

	"github.com/galpartuk/Ironvest-assignment/config"
	"github.com/galpartuk/Ironvest-assignment/controller"
	"github.com/galpartuk/Ironvest-assignment/dtos/request"
	"github.com/galpartuk/Ironvest-assignment/middleware"
	"github.com/galpartuk/Ironvest-assignment/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Server struct {
	AuthController controller.IAuthController
	UserController controller.IUserController
	JWTService     services.IJWTService
	Logger         *zap.Logger
}

// NOTE: Server Constructor
func NewServer(
	authController controller.IAuthController,
	userController controller.IUserController,
	jwtService services.IJWTService,
	logger *zap.Logger,
) *Server {
	return &Server{
		AuthController: authController,
		UserController: userController,
		JWTService:     jwtService,
		Logger:         logger,
	}
}

// NOTE: Start Fiber Server
func (s *Server) Start() *fiber.App {
	app := fiber.New()

	app.Use(middleware.RecoveryMiddleware())
	app.Use(middleware.LoggingMiddleware(s.Logger))
	app.Use(middleware.GlobalRateLimiter())

	// NOTE: Define API paths (context path and grouping by version)
	contextPath := app.Group(config.Conf.Application.Server.ContextPath)
	apiVersion := contextPath.Group(config.Conf.Application.Server.ApiVersion)

	// Verification routes cost a provider round trip each, so they carry a
	// tighter per-route budget on top of the global limiter.
	verifyLimiter := middleware.RouteRateLimiter(10, 30*time.Second)

	authGroup := apiVersion.Group("/auth")
	authGroup.Post("/register", verifyLimiter, middleware.ValidateBody[request.RegisterRequest](), s.AuthController.Register)
	authGroup.Post("/login", verifyLimiter, middleware.ValidateBody[request.LoginRequest](), s.AuthController.Login)
	authGroup.Post("/enroll", verifyLimiter, middleware.ValidateBody[request.EnrollRequest](), s.AuthController.Enroll)
	authGroup.Post("/user-check", middleware.ValidateBody[request.UserCheckRequest](), s.AuthController.UserCheck)
	authGroup.Get("/logout", s.AuthController.Logout)
	authGroup.Post("/logout", s.AuthController.Logout)
	authGroup.Get("/me", middleware.AuthMiddleware(s.JWTService), s.UserController.Me)
	authGroup.Get("/audit-logs", middleware.AuthMiddleware(s.JWTService), s.UserController.AuditLogs)

	return app
}
