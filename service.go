package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/galpartuk/Ironvest-assignment/actionid"
	"github.com/galpartuk/Ironvest-assignment/config"
	"github.com/galpartuk/Ironvest-assignment/controller"
	"github.com/galpartuk/Ironvest-assignment/middleware"
	"github.com/galpartuk/Ironvest-assignment/repository/command_repository"
	"github.com/galpartuk/Ironvest-assignment/repository/query_repository"
	"github.com/galpartuk/Ironvest-assignment/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type service struct {
	//DB
	dbConnection *gorm.DB

	// Logger
	logger *zap.Logger

	// Provider client
	actionidClient actionid.IValidator

	// Repository
	userQuery    query_repository.IUserQueryRepository
	userCommand  command_repository.IUserCommandRepository
	auditQuery   query_repository.IAuditQueryRepository
	auditCommand command_repository.IAuditCommandRepository

	// Service
	authService  services.IAuthService
	auditService services.IAuditService
	jwtService   services.IJWTService

	// Controller
	authController controller.IAuthController
	userController controller.IUserController
}

// NOTE: Service Start
func (s *service) Start() {
	log.Info("Opening database connection...")
	s.dbConnection = config.OpenDatabaseConnection(config.Conf.Application.Datasource.PrimaryURL)
	config.Migrate(config.Conf.Application.Datasource.PrimaryURL)

	s.logger = config.InitLogger()
	middleware.InitValidator()

	// NOTE: Dependency Injections
	s.DependencyInjection()

	// NOTE: Start Fiber server...
	app := NewServer(s.authController, s.userController, s.jwtService, s.logger).Start()

	log.Info("Server starting..")
	// NOTE: Server start with goroutine
	go func() {
		if err := app.Listen(config.Conf.Application.Server.Port); err != nil {
			log.Fatal("Server failed to start")
		}
	}()
	// NOTE: Keep OS signals for graceful shutdown
	s.gracefulShutdown(app)
}

// NOTE: Depency Injection Operation
func (s *service) DependencyInjection() {
	security := config.Conf.Application.Security
	provider := config.Conf.Application.ActionID

	s.jwtService = services.NewJWTService(
		[]byte(security.Secret),
		security.Issuer,
		time.Duration(security.TokenValidityInSeconds)*time.Second,
	)

	s.actionidClient = actionid.NewClient(
		provider.BaseURL,
		provider.CID,
		provider.APIKey,
		provider.MaxAttempts,
		time.Duration(provider.BaseDelayMs)*time.Millisecond,
		time.Duration(provider.TimeoutSeconds)*time.Second,
	)

	// NOTE: Repositories Injections
	s.userQuery = query_repository.NewUserQueryRepository()
	s.userCommand = command_repository.NewUserCommandRepository()
	s.auditQuery = query_repository.NewAuditQueryRepository()
	s.auditCommand = command_repository.NewAuditCommandRepository()

	// NOTE: Services Injections
	s.auditService = services.NewAuditService(s.dbConnection, s.auditCommand, s.auditQuery, s.logger)
	s.authService = services.NewAuthService(s.dbConnection, s.userQuery, s.userCommand, s.auditService, s.actionidClient, s.jwtService, s.logger)

	// NOTE: Controllers Injections
	s.authController = controller.NewAuthController(s.authService)
	s.userController = controller.NewUserController(s.authService, s.auditService)
}

// NOTE: Graceful shutdown operation
func (s *service) gracefulShutdown(app *fiber.App) {

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// NOTE: Server Shutdown when keep signal
	<-sigChan
	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// NOTE: Shutdown Fiber server
	if err := app.Shutdown(); err != nil {
		log.Error("error while shutting down app", err)
	}

	// NOTE: Shutdown Database connection
	done := make(chan bool)
	go func() {
		config.CloseDatabaseConnection(s.dbConnection)
		done <- true
	}()

	select {
	case <-ctx.Done():
		log.Error("timeout while shutting down database", ctx.Err())
	case <-done:
		log.Info("database is gracefully shutdown")
	}
}
