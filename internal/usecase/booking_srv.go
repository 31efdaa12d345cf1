package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/internal/data/repository"
	"airline-ticketing/internal/dto/request"
	"airline-ticketing/internal/dto/response"
	"airline-ticketing/internal/kafka"
	"airline-ticketing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Baggage checked through the purchase flow is registered at a flat weight;
// actual weighing happens at the counter.
const defaultBaggageWeightKg = 20.0

const baggageTagAttempts = 5

type BookingService interface {
	GetPurchaseState(ctx context.Context, accountID, flightID string) (*response.DraftResponse, error)
	SelectClass(ctx context.Context, accountID, flightID string, req *request.SelectClassRequest) (*response.DraftResponse, error)
	SelectSeat(ctx context.Context, accountID, flightID string, req *request.SelectSeatRequest) (*response.DraftResponse, error)
	Confirm(ctx context.Context, accountID, flightID string) (*response.PurchaseResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	producer kafka.Publisher
	topic    string
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, producer kafka.Publisher, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		producer: producer,
		topic:    config.Kafka.TicketTopic,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetPurchaseState(ctx context.Context, accountID, flightID string) (*response.DraftResponse, error) {
	accountUUID, flight, err := s.loadFlightForPurchase(ctx, accountID, flightID)
	if err != nil {
		return nil, err
	}

	draft, err := s.repo.Draft.Get(ctx, accountUUID)
	if err != nil {
		s.log.Error("Failed to get draft", zap.Error(err), zap.String("account_id", accountID))
		return nil, fmt.Errorf("get draft: %w", err)
	}

	// A draft for another flight does not carry over.
	if draft == nil || draft.FlightID != flight.ID.String() {
		return &response.DraftResponse{Step: entity.PurchaseStepClass}, nil
	}

	return draftToResponse(draft), nil
}

func (s *bookingService) SelectClass(ctx context.Context, accountID, flightID string, req *request.SelectClassRequest) (*response.DraftResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Select class validation failed", zap.Any("errors", errs))
		return nil, Validationf("%s", utils.FormatValidationErrors(errs))
	}

	accountUUID, flight, err := s.loadFlightForPurchase(ctx, accountID, flightID)
	if err != nil {
		return nil, err
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return nil, Validationf("invalid class ID format %s", req.ClassID)
	}

	class, err := s.repo.Class.FindByID(ctx, classID)
	if err != nil {
		s.log.Error("Failed to find class", zap.Error(err), zap.String("class_id", req.ClassID))
		return nil, fmt.Errorf("find class: %w", err)
	}
	if class == nil {
		return nil, NotFoundf("service class %s", req.ClassID)
	}

	if req.BaggageTypeID != nil {
		baggageTypeID, err := uuid.Parse(*req.BaggageTypeID)
		if err != nil {
			return nil, Validationf("invalid baggage type ID format %s", *req.BaggageTypeID)
		}

		baggageType, err := s.repo.BaggageType.FindByID(ctx, baggageTypeID)
		if err != nil {
			s.log.Error("Failed to find baggage type", zap.Error(err))
			return nil, fmt.Errorf("find baggage type: %w", err)
		}
		if baggageType == nil {
			return nil, NotFoundf("baggage type %s", *req.BaggageTypeID)
		}
	}

	// Selecting a class starts the flow over: the flight is pinned here and
	// any previously chosen seat is dropped.
	draft := &entity.PurchaseDraft{
		FlightID:      flight.ID.String(),
		ClassID:       req.ClassID,
		BaggageTypeID: req.BaggageTypeID,
		StartedAt:     time.Now(),
	}

	if err := s.repo.Draft.Save(ctx, accountUUID, draft); err != nil {
		s.log.Error("Failed to save draft", zap.Error(err), zap.String("account_id", accountID))
		return nil, fmt.Errorf("save draft: %w", err)
	}

	s.log.Info("Purchase class selected",
		zap.String("account_id", accountID),
		zap.String("flight_id", flightID),
		zap.String("class_id", req.ClassID),
	)

	return draftToResponse(draft), nil
}

func (s *bookingService) SelectSeat(ctx context.Context, accountID, flightID string, req *request.SelectSeatRequest) (*response.DraftResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Select seat validation failed", zap.Any("errors", errs))
		return nil, Validationf("%s", utils.FormatValidationErrors(errs))
	}

	accountUUID, flight, err := s.loadFlightForPurchase(ctx, accountID, flightID)
	if err != nil {
		return nil, err
	}

	draft, err := s.draftForFlight(ctx, accountUUID, flight)
	if err != nil {
		return nil, err
	}
	if !draft.ClassSelected() {
		return nil, &StepError{Step: entity.PurchaseStepClass, Reason: "class not selected"}
	}

	rows, seatsRow := DefaultRows, DefaultSeatsRow
	if airplane, err := s.repo.Airplane.FindByID(ctx, flight.AirplaneID); err == nil && airplane != nil {
		rows, seatsRow = airplane.Rows, airplane.SeatsRow
	}

	if !ValidSeat(req.SeatNumber, rows, seatsRow) {
		return nil, Validationf("seat %s does not exist on this flight", req.SeatNumber)
	}

	bookedSeats, err := s.repo.Ticket.ActiveSeatNumbers(ctx, flight.ID)
	if err != nil {
		s.log.Error("Failed to check booked seats", zap.Error(err), zap.String("flight_id", flightID))
		return nil, fmt.Errorf("check booked seats: %w", err)
	}
	for _, seat := range bookedSeats {
		if seat == req.SeatNumber {
			return nil, fmt.Errorf("%w: %s", ErrSeatTaken, req.SeatNumber)
		}
	}

	draft.SeatNumber = req.SeatNumber
	if err := s.repo.Draft.Save(ctx, accountUUID, draft); err != nil {
		s.log.Error("Failed to save draft", zap.Error(err), zap.String("account_id", accountID))
		return nil, fmt.Errorf("save draft: %w", err)
	}

	s.log.Info("Purchase seat selected",
		zap.String("account_id", accountID),
		zap.String("flight_id", flightID),
		zap.String("seat", req.SeatNumber),
	)

	return draftToResponse(draft), nil
}

func (s *bookingService) Confirm(ctx context.Context, accountID, flightID string) (*response.PurchaseResponse, error) {
	accountUUID, flight, err := s.loadFlightForPurchase(ctx, accountID, flightID)
	if err != nil {
		return nil, err
	}

	draft, err := s.draftForFlight(ctx, accountUUID, flight)
	if err != nil {
		return nil, err
	}
	if !draft.ClassSelected() {
		return nil, &StepError{Step: entity.PurchaseStepClass, Reason: "class not selected"}
	}
	if !draft.SeatSelected() {
		return nil, &StepError{Step: entity.PurchaseStepSeat, Reason: "seat not selected"}
	}

	account, err := s.repo.Account.FindByID(ctx, accountUUID)
	if err != nil || account == nil {
		return nil, NotFoundf("account %s", accountID)
	}

	user, err := s.repo.User.FindByAccountID(ctx, accountUUID)
	if err != nil {
		s.log.Error("Failed to find user profile", zap.Error(err), zap.String("account_id", accountID))
		return nil, fmt.Errorf("find user profile: %w", err)
	}
	if user == nil {
		return nil, NotFoundf("profile for account %s", accountID)
	}
	if user.PassportNumber == nil || *user.PassportNumber == "" {
		return nil, Validationf("passport number missing from profile")
	}

	classID, err := uuid.Parse(draft.ClassID)
	if err != nil {
		return nil, Validationf("invalid class ID in draft")
	}
	class, err := s.repo.Class.FindByID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("find class: %w", err)
	}
	if class == nil {
		return nil, NotFoundf("service class %s", draft.ClassID)
	}

	var baggageType *entity.BaggageType
	if draft.BaggageTypeID != nil {
		baggageTypeID, err := uuid.Parse(*draft.BaggageTypeID)
		if err != nil {
			return nil, Validationf("invalid baggage type ID in draft")
		}
		baggageType, err = s.repo.BaggageType.FindByID(ctx, baggageTypeID)
		if err != nil {
			return nil, fmt.Errorf("find baggage type: %w", err)
		}
		if baggageType == nil {
			return nil, NotFoundf("baggage type %s", *draft.BaggageTypeID)
		}
	}

	// Pre-check before the transaction; the partial unique index still backs
	// this up against a concurrent buyer.
	bookedSeats, err := s.repo.Ticket.ActiveSeatNumbers(ctx, flight.ID)
	if err != nil {
		return nil, fmt.Errorf("check booked seats: %w", err)
	}
	for _, seat := range bookedSeats {
		if seat == draft.SeatNumber {
			return nil, fmt.Errorf("%w: %s", ErrSeatTaken, draft.SeatNumber)
		}
	}

	baggagePrice := 0.0
	if baggageType != nil {
		baggagePrice = baggageType.BasePrice
	}
	price := CalculateFare(class.Name, baggagePrice)

	now := time.Now()
	transactionID := utils.GenerateTransactionID()

	passenger := &entity.Passenger{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Patronymic:     user.Patronymic,
		PassportNumber: *user.PassportNumber,
		Birthday:       user.Birthday,
	}

	payment := &entity.Payment{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        user.ID,
		PaymentDate:   now,
		TotalCost:     price,
		Method:        "CARD",
		Status:        entity.PaymentStatusCompleted,
		TransactionID: &transactionID,
	}

	ticket := &entity.Ticket{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FlightID:   flight.ID,
		ClassID:    class.ID,
		SeatNumber: draft.SeatNumber,
		Price:      price,
		Status:     entity.TicketStatusPaid,
		PaymentID:  payment.ID,
	}

	var baggage *entity.Baggage
	if baggageType != nil {
		tag, err := s.generateBaggageTag(ctx)
		if err != nil {
			return nil, err
		}
		baggage = &entity.Baggage{
			BaseSimple: entity.BaseSimple{
				ID:        utils.GenerateUUID(),
				CreatedAt: now,
			},
			TicketID:      ticket.ID,
			BaggageTypeID: baggageType.ID,
			WeightKg:      defaultBaggageWeightKg,
			Tag:           tag,
			Status:        entity.BaggageStatusRegistered,
			RegisteredAt:  now,
		}
	}

	record := &repository.PurchaseRecord{
		Passenger: passenger,
		Payment:   payment,
		Ticket:    ticket,
		Baggage:   baggage,
	}

	if err := s.repo.Ticket.CreatePurchase(ctx, record); err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			return nil, fmt.Errorf("%w: %s", ErrSeatTaken, draft.SeatNumber)
		}
		s.log.Error("Failed to commit purchase",
			zap.Error(err),
			zap.String("account_id", accountID),
			zap.String("flight_id", flightID),
		)
		return nil, fmt.Errorf("commit purchase: %w", err)
	}

	if err := s.repo.Draft.Clear(ctx, accountUUID); err != nil {
		s.log.Warn("Failed to clear draft after purchase",
			zap.Error(err),
			zap.String("account_id", accountID),
		)
		// The draft expires on its own.
	}

	s.log.Info("Purchase committed",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("account_id", accountID),
		zap.String("flight", flight.Number),
		zap.String("seat", ticket.SeatNumber),
		zap.Float64("price", price),
	)

	s.publishPurchased(account, flight, class, ticket)

	resp := &response.PurchaseResponse{
		TicketID:      ticket.ID.String(),
		FlightNumber:  flight.Number,
		SeatNumber:    ticket.SeatNumber,
		ClassName:     string(class.Name),
		Price:         price,
		Status:        string(ticket.Status),
		PaymentID:     payment.ID.String(),
		TransactionID: payment.TransactionID,
	}
	if baggage != nil {
		resp.BaggageTag = &baggage.Tag
	}

	return resp, nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) loadFlightForPurchase(ctx context.Context, accountID, flightID string) (uuid.UUID, *entity.Flight, error) {
	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return uuid.Nil, nil, Validationf("invalid account ID format %s", accountID)
	}

	id, err := uuid.Parse(flightID)
	if err != nil {
		return uuid.Nil, nil, Validationf("invalid flight ID format %s", flightID)
	}

	flight, err := s.repo.Flight.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find flight", zap.Error(err), zap.String("flight_id", flightID))
		return uuid.Nil, nil, fmt.Errorf("find flight: %w", err)
	}
	if flight == nil {
		return uuid.Nil, nil, NotFoundf("flight %s", flightID)
	}
	if !flight.Bookable() {
		return uuid.Nil, nil, Validationf("flight %s is not open for booking", flight.Number)
	}

	return accountUUID, flight, nil
}

// draftForFlight loads the account draft and rejects it when it belongs to a
// different flight: the client is sent back to step one.
func (s *bookingService) draftForFlight(ctx context.Context, accountID uuid.UUID, flight *entity.Flight) (*entity.PurchaseDraft, error) {
	draft, err := s.repo.Draft.Get(ctx, accountID)
	if err != nil {
		s.log.Error("Failed to get draft", zap.Error(err), zap.String("account_id", accountID.String()))
		return nil, fmt.Errorf("get draft: %w", err)
	}
	if draft == nil {
		return nil, &StepError{Step: entity.PurchaseStepClass, Reason: "no purchase in progress"}
	}
	if draft.FlightID != flight.ID.String() {
		return nil, &StepError{Step: entity.PurchaseStepClass, Reason: "purchase in progress for another flight"}
	}

	return draft, nil
}

func (s *bookingService) generateBaggageTag(ctx context.Context) (string, error) {
	for i := 0; i < baggageTagAttempts; i++ {
		tag := utils.GenerateBaggageTag()
		exists, err := s.repo.Baggage.TagExists(ctx, tag)
		if err != nil {
			return "", fmt.Errorf("check baggage tag: %w", err)
		}
		if !exists {
			return tag, nil
		}
	}
	return "", fmt.Errorf("generate unique baggage tag: attempts exhausted")
}

func (s *bookingService) publishPurchased(account *entity.Account, flight *entity.Flight, class *entity.ServiceClass, ticket *entity.Ticket) {
	if s.producer == nil {
		return
	}

	event := kafka.TicketPurchasedEvent{
		TicketID:      ticket.ID.String(),
		Email:         account.Email,
		FlightNumber:  flight.Number,
		SeatNumber:    ticket.SeatNumber,
		ClassName:     string(class.Name),
		TotalCost:     ticket.Price,
		DepartureTime: flight.DepartureTime,
		PurchasedAt:   time.Now(),
	}

	// Best effort: the purchase is already committed, a lost event only
	// delays the email.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.producer.Publish(ctx, s.topic, event.TicketID, event); err != nil {
		s.log.Warn("Failed to publish purchase event",
			zap.Error(err),
			zap.String("ticket_id", event.TicketID),
		)
	}
}

func draftToResponse(draft *entity.PurchaseDraft) *response.DraftResponse {
	resp := &response.DraftResponse{
		Step:          draft.Step(),
		FlightID:      draft.FlightID,
		ClassID:       draft.ClassID,
		BaggageTypeID: draft.BaggageTypeID,
		SeatNumber:    draft.SeatNumber,
	}
	if !draft.StartedAt.IsZero() {
		startedAt := draft.StartedAt
		resp.StartedAt = &startedAt
	}
	return resp
}
