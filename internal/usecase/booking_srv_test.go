package usecase

import (
	"context"
	"testing"
	"time"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/internal/data/repository"
	"airline-ticketing/internal/dto/request"
	"airline-ticketing/internal/kafka"
	"airline-ticketing/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingFixture struct {
	account     *mockAccountRepo
	user        *mockUserRepo
	flight      *mockFlightRepo
	airplane    *mockAirplaneRepo
	class       *mockClassRepo
	baggageType *mockBaggageTypeRepo
	ticket      *mockTicketRepo
	baggage     *mockBaggageRepo
	draft       *mockDraftRepo
	producer    *fakePublisher

	service BookingService

	accountID uuid.UUID
	flightID  uuid.UUID
	classID   uuid.UUID
	flightRec *entity.Flight
	classRec  *entity.ServiceClass
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	f := &bookingFixture{
		account:     &mockAccountRepo{},
		user:        &mockUserRepo{},
		flight:      &mockFlightRepo{},
		airplane:    &mockAirplaneRepo{},
		class:       &mockClassRepo{},
		baggageType: &mockBaggageTypeRepo{},
		ticket:      &mockTicketRepo{},
		baggage:     &mockBaggageRepo{},
		draft:       &mockDraftRepo{},
		producer:    &fakePublisher{},
		accountID:   uuid.New(),
		flightID:    uuid.New(),
		classID:     uuid.New(),
	}

	f.flightRec = &entity.Flight{
		Base:          entity.Base{ID: f.flightID},
		Number:        "GQ-1234",
		AirplaneID:    uuid.New(),
		DepartureTime: time.Now().Add(48 * time.Hour),
		Status:        entity.FlightStatusScheduled,
	}
	f.classRec = &entity.ServiceClass{
		BaseSimple: entity.BaseSimple{ID: f.classID},
		Name:       entity.ClassEconomy,
	}

	repo := &repository.Repository{
		Account:     f.account,
		User:        f.user,
		Flight:      f.flight,
		Airplane:    f.airplane,
		Class:       f.class,
		BaggageType: f.baggageType,
		Ticket:      f.ticket,
		Baggage:     f.baggage,
		Draft:       f.draft,
	}
	config := &utils.Config{
		Kafka: utils.KafkaConfig{TicketTopic: "ticket.purchased"},
	}

	f.service = NewBookingService(repo, f.producer, config, zap.NewNop())
	return f
}

func (f *bookingFixture) expectFlight() {
	f.flight.On("FindByID", mock.Anything, f.flightID).Return(f.flightRec, nil)
}

func TestGetPurchaseStateNoDraft(t *testing.T) {
	f := newBookingFixture(t)
	f.expectFlight()
	f.draft.On("Get", mock.Anything, f.accountID).Return(nil, nil)

	resp, err := f.service.GetPurchaseState(context.Background(), f.accountID.String(), f.flightID.String())

	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStepClass, resp.Step)
	assert.Empty(t, resp.FlightID)
}

func TestGetPurchaseStateDraftForAnotherFlight(t *testing.T) {
	f := newBookingFixture(t)
	f.expectFlight()
	f.draft.On("Get", mock.Anything, f.accountID).Return(&entity.PurchaseDraft{
		FlightID: uuid.New().String(),
		ClassID:  f.classID.String(),
	}, nil)

	resp, err := f.service.GetPurchaseState(context.Background(), f.accountID.String(), f.flightID.String())

	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStepClass, resp.Step)
}

func TestGetPurchaseStateResumesDraft(t *testing.T) {
	f := newBookingFixture(t)
	f.expectFlight()
	f.draft.On("Get", mock.Anything, f.accountID).Return(&entity.PurchaseDraft{
		FlightID:   f.flightID.String(),
		ClassID:    f.classID.String(),
		SeatNumber: "12A",
		StartedAt:  time.Now(),
	}, nil)

	resp, err := f.service.GetPurchaseState(context.Background(), f.accountID.String(), f.flightID.String())

	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStepConfirm, resp.Step)
	assert.Equal(t, "12A", resp.SeatNumber)
	assert.NotNil(t, resp.StartedAt)
}

func TestGetPurchaseStateFlightNotFound(t *testing.T) {
	f := newBookingFixture(t)
	f.flight.On("FindByID", mock.Anything, f.flightID).Return(nil, nil)

	_, err := f.service.GetPurchaseState(context.Background(), f.accountID.String(), f.flightID.String())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSelectClassStartsDraft(t *testing.T) {
	f := newBookingFixture(t)
	f.expectFlight()
	f.class.On("FindByID", mock.Anything, f.classID).Return(f.classRec, nil)
	f.draft.On("Save", mock.Anything, f.accountID, mock.Anything).Return(nil)

	resp, err := f.service.SelectClass(context.Background(), f.accountID.String(), f.flightID.String(),
		&request.SelectClassRequest{ClassID: f.classID.String()})

	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStepSeat, resp.Step)
	assert.Equal(t, f.flightID.String(), resp.FlightID)

	saved := f.draft.Calls[len(f.draft.Calls)-1].Arguments.Get(2).(*entity.PurchaseDraft)
	assert.Equal(t, f.flightID.String(), saved.FlightID)
	assert.Empty(t, saved.SeatNumber)
	assert.False(t, saved.StartedAt.IsZero())
}

func TestSelectClassDropsPreviousSeat(t *testing.T) {
	// Re-selecting a class starts over even when a seat was already chosen.
	f := newBookingFixture(t)
	f.expectFlight()
	f.class.On("FindByID", mock.Anything, f.classID).Return(f.classRec, nil)
	f.draft.On("Save", mock.Anything, f.accountID, mock.MatchedBy(func(d *entity.PurchaseDraft) bool {
		return d.SeatNumber == ""
	})).Return(nil)

	resp, err := f.service.SelectClass(context.Background(), f.accountID.String(), f.flightID.String(),
		&request.SelectClassRequest{ClassID: f.classID.String()})

	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStepSeat, resp.Step)
	f.draft.AssertExpectations(t)
}

func TestSelectClassUnknownClass(t *testing.T) {
	f := newBookingFixture(t)
	f.expectFlight()
	f.class.On("FindByID", mock.Anything, f.classID).Return(nil, nil)

	_, err := f.service.SelectClass(context.Background(), f.accountID.String(), f.flightID.String(),
		&request.SelectClassRequest{ClassID: f.classID.String()})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSelectClassUnknownBaggageType(t *testing.T) {
	f := newBookingFixture(t)
	f.expectFlight()
	f.class.On("FindByID", mock.Anything, f.classID).Return(f.classRec, nil)

	baggageTypeID := uuid.New()
	f.baggageType.On("FindByID", mock.Anything, baggageTypeID).Return(nil, nil)

	id := baggageTypeID.String()
	_, err := f.service.SelectClass(context.Background(), f.accountID.String(), f.flightID.String(),
		&request.SelectClassRequest{ClassID: f.classID.String(), BaggageTypeID: &id})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSelectClassFlightNotBookable(t *testing.T) {
	f := newBookingFixture(t)
	f.flightRec.Status = entity.FlightStatusCancelled
	f.expectFlight()

	_, err := f.service.SelectClass(context.Background(), f.accountID.String(), f.flightID.String(),
		&request.SelectClassRequest{ClassID: f.classID.String()})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestSelectSeatWithoutClass(t *testing.T) {
	f := newBookingFixture(t)
	f.expectFlight()
	f.draft.On("Get", mock.Anything, f.accountID).Return(nil, nil)

	_, err := f.service.SelectSeat(context.Background(), f.accountID.String(), f.flightID.String(),
		&request.SelectSeatRequest{SeatNumber: "12A"})

	assert.ErrorIs(t, err, ErrStepOutOfOrder)
	assert.Equal(t, entity.PurchaseStepClass, StepFromError(err))
}

func TestSelectSeatTaken(t *testing.T) {
	f := newBookingFixture(t)
	f.expectFlight()
	f.draft.On("Get", mock.Anything, f.accountID).Return(&entity.PurchaseDraft{
		FlightID: f.flightID.String(),
		ClassID:  f.classID.String(),
	}, nil)
	f.airplane.On("FindByID", mock.Anything, f.flightRec.AirplaneID).Return(nil, nil)
	f.ticket.On("ActiveSeatNumbers", mock.Anything, f.flightID).Return([]string{"12A", "12B"}, nil)

	_, err := f.service.SelectSeat(context.Background(), f.accountID.String(), f.flightID.String(),
		&request.SelectSeatRequest{SeatNumber: "12A"})

	assert.ErrorIs(t, err, ErrSeatTaken)
}

func TestSelectSeatOutsideLayout(t *testing.T) {
	f := newBookingFixture(t)
	f.expectFlight()
	f.draft.On("Get", mock.Anything, f.accountID).Return(&entity.PurchaseDraft{
		FlightID: f.flightID.String(),
		ClassID:  f.classID.String(),
	}, nil)
	f.airplane.On("FindByID", mock.Anything, f.flightRec.AirplaneID).Return(&entity.Airplane{
		Base: entity.Base{ID: f.flightRec.AirplaneID}, Rows: 27, SeatsRow: 6,
	}, nil)

	_, err := f.service.SelectSeat(context.Background(), f.accountID.String(), f.flightID.String(),
		&request.SelectSeatRequest{SeatNumber: "28A"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestSelectSeatSavesDraft(t *testing.T) {
	f := newBookingFixture(t)
	f.expectFlight()
	f.draft.On("Get", mock.Anything, f.accountID).Return(&entity.PurchaseDraft{
		FlightID: f.flightID.String(),
		ClassID:  f.classID.String(),
	}, nil)
	f.airplane.On("FindByID", mock.Anything, f.flightRec.AirplaneID).Return(nil, nil)
	f.ticket.On("ActiveSeatNumbers", mock.Anything, f.flightID).Return([]string{"1A"}, nil)
	f.draft.On("Save", mock.Anything, f.accountID, mock.MatchedBy(func(d *entity.PurchaseDraft) bool {
		return d.SeatNumber == "12A"
	})).Return(nil)

	resp, err := f.service.SelectSeat(context.Background(), f.accountID.String(), f.flightID.String(),
		&request.SelectSeatRequest{SeatNumber: "12A"})

	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStepConfirm, resp.Step)
	f.draft.AssertExpectations(t)
}

func confirmReadyFixture(t *testing.T) *bookingFixture {
	t.Helper()

	f := newBookingFixture(t)
	f.expectFlight()
	f.draft.On("Get", mock.Anything, f.accountID).Return(&entity.PurchaseDraft{
		FlightID:   f.flightID.String(),
		ClassID:    f.classID.String(),
		SeatNumber: "12A",
		StartedAt:  time.Now(),
	}, nil)

	passport := "4510123456"
	f.account.On("FindByID", mock.Anything, f.accountID).Return(&entity.Account{
		Base:  entity.Base{ID: f.accountID},
		Email: "buyer@example.com",
		Role:  entity.RoleUser,
	}, nil)
	f.user.On("FindByAccountID", mock.Anything, f.accountID).Return(&entity.User{
		Base:           entity.Base{ID: uuid.New()},
		AccountID:      f.accountID,
		FirstName:      "Ivan",
		LastName:       "Petrov",
		PassportNumber: &passport,
	}, nil)
	f.class.On("FindByID", mock.Anything, f.classID).Return(f.classRec, nil)
	f.ticket.On("ActiveSeatNumbers", mock.Anything, f.flightID).Return([]string{}, nil)

	return f
}

func TestConfirmWithoutSeat(t *testing.T) {
	f := newBookingFixture(t)
	f.expectFlight()
	f.draft.On("Get", mock.Anything, f.accountID).Return(&entity.PurchaseDraft{
		FlightID: f.flightID.String(),
		ClassID:  f.classID.String(),
	}, nil)

	_, err := f.service.Confirm(context.Background(), f.accountID.String(), f.flightID.String())

	assert.ErrorIs(t, err, ErrStepOutOfOrder)
	assert.Equal(t, entity.PurchaseStepSeat, StepFromError(err))
}

func TestConfirmMissingPassport(t *testing.T) {
	f := newBookingFixture(t)
	f.expectFlight()
	f.draft.On("Get", mock.Anything, f.accountID).Return(&entity.PurchaseDraft{
		FlightID:   f.flightID.String(),
		ClassID:    f.classID.String(),
		SeatNumber: "12A",
	}, nil)
	f.account.On("FindByID", mock.Anything, f.accountID).Return(&entity.Account{
		Base: entity.Base{ID: f.accountID},
	}, nil)
	f.user.On("FindByAccountID", mock.Anything, f.accountID).Return(&entity.User{
		Base:      entity.Base{ID: uuid.New()},
		AccountID: f.accountID,
		FirstName: "Ivan",
		LastName:  "Petrov",
	}, nil)

	_, err := f.service.Confirm(context.Background(), f.accountID.String(), f.flightID.String())

	assert.ErrorIs(t, err, ErrValidation)
	f.ticket.AssertNotCalled(t, "CreatePurchase", mock.Anything, mock.Anything)
}

func TestConfirmCommitsPurchase(t *testing.T) {
	f := confirmReadyFixture(t)
	f.ticket.On("CreatePurchase", mock.Anything, mock.Anything).Return(nil)
	f.draft.On("Clear", mock.Anything, f.accountID).Return(nil)

	resp, err := f.service.Confirm(context.Background(), f.accountID.String(), f.flightID.String())

	require.NoError(t, err)
	assert.Equal(t, "GQ-1234", resp.FlightNumber)
	assert.Equal(t, "12A", resp.SeatNumber)
	assert.Equal(t, "ECONOMY", resp.ClassName)
	assert.Equal(t, 5000.0, resp.Price)
	assert.Equal(t, string(entity.TicketStatusPaid), resp.Status)
	assert.Nil(t, resp.BaggageTag)
	require.NotNil(t, resp.TransactionID)

	record := f.ticket.Calls[len(f.ticket.Calls)-1].Arguments.Get(1).(*repository.PurchaseRecord)
	assert.Equal(t, "4510123456", record.Passenger.PassportNumber)
	assert.Equal(t, entity.PaymentStatusCompleted, record.Payment.Status)
	assert.Equal(t, 5000.0, record.Payment.TotalCost)
	assert.Equal(t, entity.TicketStatusPaid, record.Ticket.Status)
	assert.Equal(t, record.Payment.ID, record.Ticket.PaymentID)
	assert.Nil(t, record.Baggage)

	f.draft.AssertCalled(t, "Clear", mock.Anything, f.accountID)

	require.Len(t, f.producer.payloads, 1)
	assert.Equal(t, "ticket.purchased", f.producer.topics[0])
	event := f.producer.payloads[0].(kafka.TicketPurchasedEvent)
	assert.Equal(t, resp.TicketID, event.TicketID)
	assert.Equal(t, "buyer@example.com", event.Email)
}

func TestConfirmWithBaggage(t *testing.T) {
	f := confirmReadyFixture(t)

	baggageTypeID := uuid.New()
	id := baggageTypeID.String()
	f.draft.ExpectedCalls = nil
	f.draft.On("Get", mock.Anything, f.accountID).Return(&entity.PurchaseDraft{
		FlightID:      f.flightID.String(),
		ClassID:       f.classID.String(),
		BaggageTypeID: &id,
		SeatNumber:    "12A",
	}, nil)
	f.draft.On("Clear", mock.Anything, f.accountID).Return(nil)

	f.baggageType.On("FindByID", mock.Anything, baggageTypeID).Return(&entity.BaggageType{
		BaseSimple: entity.BaseSimple{ID: baggageTypeID},
		Name:       "STANDARD",
		BasePrice:  2000,
	}, nil)
	f.baggage.On("TagExists", mock.Anything, mock.Anything).Return(false, nil)
	f.ticket.On("CreatePurchase", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.service.Confirm(context.Background(), f.accountID.String(), f.flightID.String())

	require.NoError(t, err)
	assert.Equal(t, 7000.0, resp.Price)
	require.NotNil(t, resp.BaggageTag)
	assert.Len(t, *resp.BaggageTag, 8)

	record := f.ticket.Calls[len(f.ticket.Calls)-1].Arguments.Get(1).(*repository.PurchaseRecord)
	require.NotNil(t, record.Baggage)
	assert.Equal(t, 20.0, record.Baggage.WeightKg)
	assert.Equal(t, entity.BaggageStatusRegistered, record.Baggage.Status)
	assert.Equal(t, record.Ticket.ID, record.Baggage.TicketID)
}

func TestConfirmSeatTakenOnCommit(t *testing.T) {
	// The pre-check passed but a concurrent buyer hit the unique index first.
	f := confirmReadyFixture(t)
	f.ticket.On("CreatePurchase", mock.Anything, mock.Anything).Return(repository.ErrSeatTaken)

	_, err := f.service.Confirm(context.Background(), f.accountID.String(), f.flightID.String())

	assert.ErrorIs(t, err, ErrSeatTaken)
	f.draft.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	assert.Empty(t, f.producer.payloads)
}
