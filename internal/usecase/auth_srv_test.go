package usecase

import (
	"context"
	"testing"
	"time"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/internal/data/repository"
	"airline-ticketing/internal/dto/request"
	"airline-ticketing/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	account *mockAccountRepo
	user    *mockUserRepo
	session *mockSessionRepo
	service AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		account: &mockAccountRepo{},
		user:    &mockUserRepo{},
		session: &mockSessionRepo{},
	}
	repo := &repository.Repository{
		Account: f.account,
		User:    f.user,
		Session: f.session,
	}
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
	f.service = NewAuthService(repo, config, zap.NewNop())
	return f
}

func TestRegisterCreatesAccountAndProfile(t *testing.T) {
	f := newAuthFixture(t)
	f.account.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	f.account.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.user.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.session.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.service.Register(context.Background(), &request.RegisterRequest{
		Email:     "new@example.com",
		Password:  "secret123",
		FirstName: "Anna",
		LastName:  "Smirnova",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", resp.Email)
	assert.Equal(t, entity.RoleUser, resp.Role)
	assert.NotEmpty(t, resp.Token)

	account := f.account.Calls[len(f.account.Calls)-1].Arguments.Get(1).(*entity.Account)
	assert.NotEqual(t, "secret123", account.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", account.PasswordHash))

	user := f.user.Calls[0].Arguments.Get(1).(*entity.User)
	assert.Equal(t, account.ID, user.AccountID)
	assert.Equal(t, "Anna", user.FirstName)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.account.On("FindByEmail", mock.Anything, "taken@example.com").Return(&entity.Account{
		Base:  entity.Base{ID: uuid.New()},
		Email: "taken@example.com",
	}, nil)

	_, err := f.service.Register(context.Background(), &request.RegisterRequest{
		Email:     "taken@example.com",
		Password:  "secret123",
		FirstName: "Anna",
		LastName:  "Smirnova",
	})

	assert.ErrorIs(t, err, ErrValidation)
	f.account.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(context.Background(), &request.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoginSuccess(t *testing.T) {
	f := newAuthFixture(t)

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	accountID := uuid.New()
	f.account.On("FindByEmail", mock.Anything, "user@example.com").Return(&entity.Account{
		Base:         entity.Base{ID: accountID},
		Email:        "user@example.com",
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}, nil)
	f.session.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.service.Login(context.Background(), &request.LoginRequest{
		Email:    "user@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, accountID.String(), resp.AccountID)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now().Add(23*time.Hour)))
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	f.account.On("FindByEmail", mock.Anything, "user@example.com").Return(&entity.Account{
		Base:         entity.Base{ID: uuid.New()},
		Email:        "user@example.com",
		PasswordHash: hash,
	}, nil)

	_, err = f.service.Login(context.Background(), &request.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-pass",
	})

	assert.ErrorIs(t, err, ErrUnauthorized)
	f.session.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.account.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	_, err := f.service.Login(context.Background(), &request.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret123",
	})

	// Unknown email and wrong password look the same to the caller.
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout(t *testing.T) {
	f := newAuthFixture(t)
	token := uuid.New().String()
	f.session.On("Revoke", mock.Anything, token).Return(nil)

	require.NoError(t, f.service.Logout(context.Background(), token))
	f.session.AssertExpectations(t)
}

func TestLogoutRejectsMalformedToken(t *testing.T) {
	f := newAuthFixture(t)

	err := f.service.Logout(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, ErrValidation)
	f.session.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
}
