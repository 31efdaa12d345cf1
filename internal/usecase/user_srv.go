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

type UserService interface {
	GetProfile(ctx context.Context, accountID string) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountID string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	GetTickets(ctx context.Context, accountID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, accountID string) (*response.ProfileResponse, error) {
	account, user, err := s.loadAccountProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	resp := response.ProfileToResponse(user, account)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, accountID string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, Validationf("%s", utils.FormatValidationErrors(errs))
	}

	account, user, err := s.loadAccountProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Patronymic = req.Patronymic
	user.Phone = req.Phone
	user.PassportNumber = req.PassportNumber
	user.UpdatedAt = time.Now()

	if req.Birthday != nil {
		birthday, err := time.Parse("2006-01-02", *req.Birthday)
		if err != nil {
			return nil, Validationf("invalid birthday %s", *req.Birthday)
		}
		user.Birthday = &birthday
	} else {
		user.Birthday = nil
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update profile",
			zap.Error(err),
			zap.String("account_id", accountID),
		)
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated", zap.String("account_id", accountID))

	resp := response.ProfileToResponse(user, account)
	return &resp, nil
}

func (s *userService) GetTickets(ctx context.Context, accountID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error) {
	_, user, err := s.loadAccountProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	limit := req.Limit()
	offset := req.Offset()

	history, err := s.repo.Ticket.FindHistoryByUserID(ctx, user.ID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get ticket history",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return nil, fmt.Errorf("get ticket history: %w", err)
	}

	total, err := s.repo.Ticket.CountByUserID(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to count tickets", zap.Error(err))
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	tickets := make([]response.TicketResponse, len(history))
	for i, row := range history {
		tickets[i] = response.TicketResponse{
			ID:               row.Ticket.ID.String(),
			FlightNumber:     row.FlightNumber,
			DepartureAirport: row.DepartureAirport,
			ArrivalAirport:   row.ArrivalAirport,
			DepartureTime:    row.DepartureTime,
			ArrivalTime:      row.ArrivalTime,
			ClassName:        string(row.ClassName),
			SeatNumber:       row.Ticket.SeatNumber,
			Price:            row.Ticket.Price,
			Status:           string(row.Ticket.Status),
			BaggageTag:       row.BaggageTag,
			PurchasedAt:      row.PaymentDate,
		}
	}

	s.log.Info("Ticket history retrieved",
		zap.String("user_id", user.ID.String()),
		zap.Int("count", len(tickets)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(tickets, req.Page, req.PerPage, total), nil
}

func (s *userService) loadAccountProfile(ctx context.Context, accountID string) (*entity.Account, *entity.User, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, nil, Validationf("invalid account ID format %s", accountID)
	}

	account, err := s.repo.Account.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find account", zap.Error(err), zap.String("account_id", accountID))
		return nil, nil, fmt.Errorf("find account: %w", err)
	}
	if account == nil {
		return nil, nil, NotFoundf("account %s", accountID)
	}

	user, err := s.repo.User.FindByAccountID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user profile", zap.Error(err), zap.String("account_id", accountID))
		return nil, nil, fmt.Errorf("find user profile: %w", err)
	}
	if user == nil {
		return nil, nil, NotFoundf("profile for account %s", accountID)
	}

	return account, user, nil
}
