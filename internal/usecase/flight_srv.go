package usecase

import (
	"context"
	"fmt"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/internal/data/repository"
	"airline-ticketing/internal/dto/request"
	"airline-ticketing/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FlightService interface {
	GetFlights(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FlightResponse], error)
	GetFlightByID(ctx context.Context, flightID string) (*response.FlightResponse, error)
	GetSeatMap(ctx context.Context, flightID string) (*response.SeatMapResponse, error)
	GetClasses(ctx context.Context) ([]response.ClassResponse, error)
	GetBaggageTypes(ctx context.Context) ([]response.BaggageTypeResponse, error)
}

type flightService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFlightService(repo *repository.Repository, log *zap.Logger) FlightService {
	return &flightService{
		repo: repo,
		log:  log.With(zap.String("service", "flight")),
	}
}

func (s *flightService) GetFlights(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FlightResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	flights, err := s.repo.Flight.FindUpcoming(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get upcoming flights", zap.Error(err))
		return nil, fmt.Errorf("get upcoming flights: %w", err)
	}

	total, err := s.repo.Flight.CountUpcoming(ctx)
	if err != nil {
		s.log.Error("Failed to count upcoming flights", zap.Error(err))
		return nil, fmt.Errorf("count upcoming flights: %w", err)
	}

	flightResponses := make([]response.FlightResponse, len(flights))
	for i, flight := range flights {
		flightResponses[i] = s.buildFlightResponse(ctx, flight)
	}

	s.log.Info("Flights retrieved",
		zap.Int("count", len(flights)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(flightResponses, req.Page, req.PerPage, total), nil
}

func (s *flightService) GetFlightByID(ctx context.Context, flightID string) (*response.FlightResponse, error) {
	flight, err := s.findFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}

	resp := s.buildFlightResponse(ctx, flight)
	return &resp, nil
}

func (s *flightService) GetSeatMap(ctx context.Context, flightID string) (*response.SeatMapResponse, error) {
	flight, err := s.findFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}

	rows, seatsRow := DefaultRows, DefaultSeatsRow
	airplane, err := s.repo.Airplane.FindByID(ctx, flight.AirplaneID)
	if err != nil {
		s.log.Error("Failed to find airplane for seat map",
			zap.Error(err),
			zap.String("flight_id", flightID),
		)
		return nil, fmt.Errorf("find airplane: %w", err)
	}
	if airplane != nil {
		rows, seatsRow = airplane.Rows, airplane.SeatsRow
	}

	bookedSeats, err := s.repo.Ticket.ActiveSeatNumbers(ctx, flight.ID)
	if err != nil {
		s.log.Error("Failed to get booked seats",
			zap.Error(err),
			zap.String("flight_id", flightID),
		)
		return nil, fmt.Errorf("get booked seats: %w", err)
	}

	return &response.SeatMapResponse{
		FlightID: flight.ID.String(),
		Rows:     BuildSeatMap(rows, seatsRow, bookedSeats),
	}, nil
}

func (s *flightService) GetClasses(ctx context.Context) ([]response.ClassResponse, error) {
	classes, err := s.repo.Class.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get service classes", zap.Error(err))
		return nil, fmt.Errorf("get service classes: %w", err)
	}

	classResponses := make([]response.ClassResponse, len(classes))
	for i, class := range classes {
		classResponses[i] = response.ClassResponse{
			ID:       class.ID.String(),
			Name:     string(class.Name),
			BaseFare: BaseFare(class.Name),
		}
	}

	return classResponses, nil
}

func (s *flightService) GetBaggageTypes(ctx context.Context) ([]response.BaggageTypeResponse, error) {
	baggageTypes, err := s.repo.BaggageType.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get baggage types", zap.Error(err))
		return nil, fmt.Errorf("get baggage types: %w", err)
	}

	baggageTypeResponses := make([]response.BaggageTypeResponse, len(baggageTypes))
	for i, baggageType := range baggageTypes {
		baggageTypeResponses[i] = response.BaggageTypeToResponse(baggageType)
	}

	return baggageTypeResponses, nil
}

// ==================== HELPER METHODS ====================

func (s *flightService) findFlight(ctx context.Context, flightID string) (*entity.Flight, error) {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return nil, Validationf("invalid flight ID format %s", flightID)
	}

	flight, err := s.repo.Flight.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find flight", zap.Error(err), zap.String("flight_id", flightID))
		return nil, fmt.Errorf("find flight: %w", err)
	}
	if flight == nil {
		return nil, NotFoundf("flight %s", flightID)
	}

	return flight, nil
}

func (s *flightService) buildFlightResponse(ctx context.Context, flight *entity.Flight) response.FlightResponse {
	resp := response.FlightResponse{
		ID:                  flight.ID.String(),
		Number:              flight.Number,
		DepartureTime:       flight.DepartureTime,
		ArrivalTime:         flight.ArrivalTime,
		ActualDepartureTime: flight.ActualDepartureTime,
		ActualArrivalTime:   flight.ActualArrivalTime,
		Status:              flight.Status,
		Departure:           response.AirportResponse{Code: flight.DepartureAirportCode},
		Arrival:             response.AirportResponse{Code: flight.ArrivalAirportCode},
	}

	if departure, _ := s.repo.Airport.FindByCode(ctx, flight.DepartureAirportCode); departure != nil {
		resp.Departure = response.AirportToResponse(departure)
	}
	if arrival, _ := s.repo.Airport.FindByCode(ctx, flight.ArrivalAirportCode); arrival != nil {
		resp.Arrival = response.AirportToResponse(arrival)
	}
	if airplane, _ := s.repo.Airplane.FindByID(ctx, flight.AirplaneID); airplane != nil {
		resp.AirplaneModel = airplane.Model
	}

	return resp
}
