package usecase

import (
	"context"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *mockAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*entity.Account)
	return account, args.Error(1)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	account, _ := args.Get(0).(*entity.Account)
	return account, args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, accountID)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockSessionRepo) RevokeAllAccountSessions(ctx context.Context, accountID uuid.UUID) error {
	return m.Called(ctx, accountID).Error(0)
}

type mockFlightRepo struct{ mock.Mock }

func (m *mockFlightRepo) Create(ctx context.Context, flight *entity.Flight) error {
	return m.Called(ctx, flight).Error(0)
}

func (m *mockFlightRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	args := m.Called(ctx, id)
	flight, _ := args.Get(0).(*entity.Flight)
	return flight, args.Error(1)
}

func (m *mockFlightRepo) FindUpcoming(ctx context.Context, limit, offset int) ([]*entity.Flight, error) {
	args := m.Called(ctx, limit, offset)
	flights, _ := args.Get(0).([]*entity.Flight)
	return flights, args.Error(1)
}

func (m *mockFlightRepo) CountUpcoming(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockAirportRepo struct{ mock.Mock }

func (m *mockAirportRepo) Create(ctx context.Context, airport *entity.Airport) error {
	return m.Called(ctx, airport).Error(0)
}

func (m *mockAirportRepo) FindByCode(ctx context.Context, code string) (*entity.Airport, error) {
	args := m.Called(ctx, code)
	airport, _ := args.Get(0).(*entity.Airport)
	return airport, args.Error(1)
}

func (m *mockAirportRepo) FindAll(ctx context.Context) ([]*entity.Airport, error) {
	args := m.Called(ctx)
	airports, _ := args.Get(0).([]*entity.Airport)
	return airports, args.Error(1)
}

type mockAirplaneRepo struct{ mock.Mock }

func (m *mockAirplaneRepo) Create(ctx context.Context, airplane *entity.Airplane) error {
	return m.Called(ctx, airplane).Error(0)
}

func (m *mockAirplaneRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Airplane, error) {
	args := m.Called(ctx, id)
	airplane, _ := args.Get(0).(*entity.Airplane)
	return airplane, args.Error(1)
}

func (m *mockAirplaneRepo) FindByRegistration(ctx context.Context, registration string) (*entity.Airplane, error) {
	args := m.Called(ctx, registration)
	airplane, _ := args.Get(0).(*entity.Airplane)
	return airplane, args.Error(1)
}

type mockClassRepo struct{ mock.Mock }

func (m *mockClassRepo) Create(ctx context.Context, class *entity.ServiceClass) error {
	return m.Called(ctx, class).Error(0)
}

func (m *mockClassRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceClass, error) {
	args := m.Called(ctx, id)
	class, _ := args.Get(0).(*entity.ServiceClass)
	return class, args.Error(1)
}

func (m *mockClassRepo) FindByName(ctx context.Context, name entity.ClassName) (*entity.ServiceClass, error) {
	args := m.Called(ctx, name)
	class, _ := args.Get(0).(*entity.ServiceClass)
	return class, args.Error(1)
}

func (m *mockClassRepo) FindAll(ctx context.Context) ([]*entity.ServiceClass, error) {
	args := m.Called(ctx)
	classes, _ := args.Get(0).([]*entity.ServiceClass)
	return classes, args.Error(1)
}

type mockBaggageTypeRepo struct{ mock.Mock }

func (m *mockBaggageTypeRepo) Create(ctx context.Context, baggageType *entity.BaggageType) error {
	return m.Called(ctx, baggageType).Error(0)
}

func (m *mockBaggageTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BaggageType, error) {
	args := m.Called(ctx, id)
	baggageType, _ := args.Get(0).(*entity.BaggageType)
	return baggageType, args.Error(1)
}

func (m *mockBaggageTypeRepo) FindAll(ctx context.Context) ([]*entity.BaggageType, error) {
	args := m.Called(ctx)
	baggageTypes, _ := args.Get(0).([]*entity.BaggageType)
	return baggageTypes, args.Error(1)
}

type mockTicketRepo struct{ mock.Mock }

func (m *mockTicketRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	args := m.Called(ctx, id)
	ticket, _ := args.Get(0).(*entity.Ticket)
	return ticket, args.Error(1)
}

func (m *mockTicketRepo) ActiveSeatNumbers(ctx context.Context, flightID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, flightID)
	seats, _ := args.Get(0).([]string)
	return seats, args.Error(1)
}

func (m *mockTicketRepo) FindHistoryByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*repository.TicketHistoryRow, error) {
	args := m.Called(ctx, userID, limit, offset)
	rows, _ := args.Get(0).([]*repository.TicketHistoryRow)
	return rows, args.Error(1)
}

func (m *mockTicketRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTicketRepo) CreatePurchase(ctx context.Context, record *repository.PurchaseRecord) error {
	return m.Called(ctx, record).Error(0)
}

type mockBaggageRepo struct{ mock.Mock }

func (m *mockBaggageRepo) FindByTicketID(ctx context.Context, ticketID uuid.UUID) (*entity.Baggage, error) {
	args := m.Called(ctx, ticketID)
	baggage, _ := args.Get(0).(*entity.Baggage)
	return baggage, args.Error(1)
}

func (m *mockBaggageRepo) TagExists(ctx context.Context, tag string) (bool, error) {
	args := m.Called(ctx, tag)
	return args.Bool(0), args.Error(1)
}

type mockDraftRepo struct{ mock.Mock }

func (m *mockDraftRepo) Get(ctx context.Context, accountID uuid.UUID) (*entity.PurchaseDraft, error) {
	args := m.Called(ctx, accountID)
	draft, _ := args.Get(0).(*entity.PurchaseDraft)
	return draft, args.Error(1)
}

func (m *mockDraftRepo) Save(ctx context.Context, accountID uuid.UUID, draft *entity.PurchaseDraft) error {
	return m.Called(ctx, accountID, draft).Error(0)
}

func (m *mockDraftRepo) Clear(ctx context.Context, accountID uuid.UUID) error {
	return m.Called(ctx, accountID).Error(0)
}

type mockAuditRepo struct{ mock.Mock }

func (m *mockAuditRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	return m.Called(ctx, log).Error(0)
}

type mockAdminRepo struct{ mock.Mock }

func (m *mockAdminRepo) List(ctx context.Context, table *repository.TableDescriptor, limit, offset int) ([]map[string]any, error) {
	args := m.Called(ctx, table, limit, offset)
	records, _ := args.Get(0).([]map[string]any)
	return records, args.Error(1)
}

func (m *mockAdminRepo) Count(ctx context.Context, table *repository.TableDescriptor) (int64, error) {
	args := m.Called(ctx, table)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAdminRepo) Get(ctx context.Context, table *repository.TableDescriptor, id string) (map[string]any, error) {
	args := m.Called(ctx, table, id)
	record, _ := args.Get(0).(map[string]any)
	return record, args.Error(1)
}

func (m *mockAdminRepo) Insert(ctx context.Context, table *repository.TableDescriptor, id any, values map[string]any) error {
	return m.Called(ctx, table, id, values).Error(0)
}

func (m *mockAdminRepo) Update(ctx context.Context, table *repository.TableDescriptor, id string, values map[string]any) (bool, error) {
	args := m.Called(ctx, table, id, values)
	return args.Bool(0), args.Error(1)
}

func (m *mockAdminRepo) Delete(ctx context.Context, table *repository.TableDescriptor, id string) (bool, error) {
	args := m.Called(ctx, table, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAdminRepo) Options(ctx context.Context, table *repository.TableDescriptor) ([]repository.Option, error) {
	args := m.Called(ctx, table)
	options, _ := args.Get(0).([]repository.Option)
	return options, args.Error(1)
}

// fakePublisher records published events in memory.
type fakePublisher struct {
	topics   []string
	keys     []string
	payloads []any
}

func (p *fakePublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	p.topics = append(p.topics, topic)
	p.keys = append(p.keys, key)
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *fakePublisher) Close() error { return nil }
