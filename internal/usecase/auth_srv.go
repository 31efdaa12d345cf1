package usecase

import (
	"context"
	"fmt"
	"time"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/internal/data/repository"
	"airline-ticketing/internal/dto/request"
	"airline-ticketing/internal/dto/response"
	"airline-ticketing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, Validationf("%s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Account.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, Validationf("email %s already registered", req.Email)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	account := &entity.Account{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	if err := s.repo.Account.Create(ctx, account); err != nil {
		s.log.Error("Failed to create account", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		AccountID: account.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user profile",
			zap.Error(err),
			zap.String("account_id", account.ID.String()),
		)
		return nil, fmt.Errorf("create user profile: %w", err)
	}

	// Auto login after register.
	session, err := s.createSession(ctx, account.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err),
			zap.String("account_id", account.ID.String()),
		)
		// Continue without a session, the client can log in.
	}

	s.log.Info("Account registered",
		zap.String("account_id", account.ID.String()),
		zap.String("email", account.Email),
	)

	resp := response.AuthToResponse(account, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, Validationf("%s", utils.FormatValidationErrors(errs))
	}

	account, err := s.repo.Account.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find account", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find account: %w", err)
	}
	if account == nil {
		s.log.Warn("Account not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if !utils.CheckPasswordHash(req.Password, account.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("account_id", account.ID.String()))
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	session, err := s.createSession(ctx, account.ID)
	if err != nil {
		s.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("account_id", account.ID.String()),
		)
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("Account logged in",
		zap.String("account_id", account.ID.String()),
		zap.String("email", account.Email),
	)

	resp := response.AuthToResponse(account, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if _, err := utils.ParseUUID(token); err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return Validationf("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("Account logged out")
	return nil
}

func (s *authService) createSession(ctx context.Context, accountID uuid.UUID) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		AccountID: accountID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(expiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
