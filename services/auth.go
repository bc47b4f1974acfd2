package services

import (
	"context"

	"github.com/galpartuk/Ironvest-assignment/actionid"
	"github.com/galpartuk/Ironvest-assignment/domain"
	"github.com/galpartuk/Ironvest-assignment/dtos/request"
	"github.com/galpartuk/Ironvest-assignment/dtos/response"
	"github.com/galpartuk/Ironvest-assignment/repository/command_repository"
	"github.com/galpartuk/Ironvest-assignment/repository/query_repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	actionLogin          = "login"
	actionUserEnrollment = "user_enrollment"
)

type IAuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserPayload, string, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserPayload, string, error)
	Enroll(ctx context.Context, req *request.EnrollRequest) (*response.UserPayload, error)
	CheckUser(req *request.UserCheckRequest) (bool, error)
	CurrentUser(subject string) (*response.UserPayload, error)
}

type AuthService struct {
	db        *gorm.DB
	query     query_repository.IUserQueryRepository
	command   command_repository.IUserCommandRepository
	audit     IAuditService
	validator actionid.IValidator
	jwt       IJWTService
	logger    *zap.Logger
}

func NewAuthService(db *gorm.DB, query query_repository.IUserQueryRepository, command command_repository.IUserCommandRepository, audit IAuditService, validator actionid.IValidator, jwt IJWTService, logger *zap.Logger) IAuthService {
	return &AuthService{db: db, query: query, command: command, audit: audit, validator: validator, jwt: jwt, logger: logger}
}

// Register enrolls a new principal. Sequence: existence pre-check, provider
// validation, audit of the verdict, insert, token issue. The pre-check is a
// fast path only; the insert's uniqueness constraint is the authoritative
// conflict signal for racing registrations.
func (s *AuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserPayload, string, error) {
	exists, err := s.query.ExistsById(s.db, req.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrAlreadyEnrolled
	}

	verdict, err := s.validator.Validate(ctx, &actionid.ValidateRequest{
		Csid:       req.Csid,
		Uid:        req.Email,
		Action:     actionUserEnrollment,
		Enrollment: true,
	})
	if err != nil {
		// The provider never answered; there is no verdict to audit.
		return nil, "", err
	}

	s.audit.Record(req.Email, domain.ActionRegister, verdict)

	if !verdict.VerifiedAction {
		s.logger.Warn("registration verification rejected",
			zap.String("email", req.Email),
			zap.Any("indicators", verdict.Indicators))
		return nil, "", &RejectionError{Message: actionid.FriendlyRejection(verdict.Indicators)}
	}

	user, err := s.command.Create(s.db, &domain.User{Id: req.Email})
	if err != nil {
		if command_repository.IsDuplicate(err) {
			return nil, "", ErrAlreadyEnrolled
		}
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.Id)
	if err != nil {
		return nil, "", err
	}

	createdAt := user.CreatedAt
	return &response.UserPayload{
		Id:         user.Id,
		Email:      user.Id,
		IsEnrolled: true,
		CreatedAt:  &createdAt,
	}, token, nil
}

// Login authenticates an existing principal. Unknown ids short-circuit
// before any provider call is made.
func (s *AuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserPayload, string, error) {
	user, err := s.query.GetById(s.db, req.Email)
	if err != nil {
		if query_repository.IsNotFound(err) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	verdict, err := s.validator.Validate(ctx, &actionid.ValidateRequest{
		Csid:       req.Csid,
		Uid:        req.Email,
		Action:     actionLogin,
		Enrollment: false,
	})
	if err != nil {
		return nil, "", err
	}

	if !verdict.VerifiedAction {
		s.logger.Warn("login verification rejected",
			zap.String("email", req.Email),
			zap.Any("indicators", verdict.Indicators))
		return nil, "", &RejectionError{Message: actionid.FriendlyRejection(verdict.Indicators)}
	}

	token, err := s.jwt.GenerateToken(user.Id)
	if err != nil {
		return nil, "", err
	}

	createdAt := user.CreatedAt
	return &response.UserPayload{
		Id:         user.Id,
		Email:      user.Id,
		IsEnrolled: true,
		CreatedAt:  &createdAt,
	}, token, nil
}

// Enroll re-runs biometric enrollment for a principal. Nothing is
// persisted locally: enrollment success is represented entirely by the
// provider accepting subsequent validations, not by a stored flag.
func (s *AuthService) Enroll(ctx context.Context, req *request.EnrollRequest) (*response.UserPayload, error) {
	verdict, err := s.validator.Validate(ctx, &actionid.ValidateRequest{
		Csid:       req.Csid,
		Uid:        req.Uid,
		Action:     actionUserEnrollment,
		Enrollment: true,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(req.Uid, domain.ActionEnrollment, verdict)

	if !verdict.VerifiedAction {
		return nil, &RejectionError{Message: actionid.FriendlyRejection(verdict.Indicators)}
	}

	return &response.UserPayload{
		Id:         req.Uid,
		Email:      req.Uid,
		IsEnrolled: true,
	}, nil
}

func (s *AuthService) CheckUser(req *request.UserCheckRequest) (bool, error) {
	exists, err := s.query.ExistsById(s.db, req.Email)
	if err != nil {
		return false, err
	}
	if req.Mode == "login" && !exists {
		return false, ErrUserNotFound
	}
	if req.Mode == "register" && exists {
		return true, ErrAlreadyEnrolled
	}
	return exists, nil
}

func (s *AuthService) CurrentUser(subject string) (*response.UserPayload, error) {
	user, err := s.query.GetById(s.db, subject)
	if err != nil {
		if query_repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	createdAt := user.CreatedAt
	return &response.UserPayload{
		Id:         user.Id,
		Email:      user.Id,
		IsEnrolled: true,
		CreatedAt:  &createdAt,
	}, nil
}
