package usecase

import (
	"airline-ticketing/internal/data/repository"
	"airline-ticketing/internal/kafka"
	"airline-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Flight  FlightService
	Booking BookingService
	Admin   AdminService
}

func NewService(repo *repository.Repository, producer kafka.Publisher, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, log),
		Flight:  NewFlightService(repo, log),
		Booking: NewBookingService(repo, producer, config, log),
		Admin:   NewAdminService(repo, log),
	}
}
