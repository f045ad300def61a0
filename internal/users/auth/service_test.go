// Copyright (c) 2026 audio-server. All rights reserved.

package auth_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mfungorn/audio-server/internal/platform/apperr"
	"github.com/Mfungorn/audio-server/internal/platform/sec"
	"github.com/Mfungorn/audio-server/internal/users/auth"
	"github.com/Mfungorn/audio-server/internal/users/customer"
	"github.com/Mfungorn/audio-server/internal/users/manager"
)

// # In-Memory Fakes

type fakeCustomerRepository struct {
	accounts map[string]*customer.Customer
	nextID   int64
	verified map[int64]bool
}

func newFakeCustomerRepository() *fakeCustomerRepository {
	return &fakeCustomerRepository{
		accounts: make(map[string]*customer.Customer),
		verified: make(map[int64]bool),
	}
}

func (r *fakeCustomerRepository) FindByID(_ context.Context, id int64) (*customer.Customer, error) {
	for _, account := range r.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, apperr.NotFoundWith("Customer", "id", id)
}

func (r *fakeCustomerRepository) FindByEmail(_ context.Context, email string) (*customer.Customer, error) {
	if account, ok := r.accounts[email]; ok {
		return account, nil
	}
	return nil, apperr.NotFoundWith("Customer", "email", email)
}

func (r *fakeCustomerRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.accounts[email]
	return ok, nil
}

func (r *fakeCustomerRepository) Create(_ context.Context, account *customer.Customer) error {
	r.nextID++
	account.ID = r.nextID
	r.accounts[account.Email] = account
	return nil
}

func (r *fakeCustomerRepository) Update(_ context.Context, account *customer.Customer) error {
	r.accounts[account.Email] = account
	return nil
}

func (r *fakeCustomerRepository) MarkVerified(_ context.Context, id int64) error {
	r.verified[id] = true
	return nil
}

type fakeManagerRepository struct {
	managers map[string]*manager.Manager
}

func (r *fakeManagerRepository) FindByID(_ context.Context, id int64) (*manager.Manager, error) {
	for _, account := range r.managers {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, apperr.NotFoundWith("Manager", "id", id)
}

func (r *fakeManagerRepository) FindByEmail(_ context.Context, email string) (*manager.Manager, error) {
	if account, ok := r.managers[email]; ok {
		return account, nil
	}
	return nil, apperr.NotFoundWith("Manager", "email", email)
}

func (r *fakeManagerRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.managers[email]
	return ok, nil
}

func (r *fakeManagerRepository) Create(_ context.Context, account *manager.Manager) error {
	account.ID = int64(len(r.managers) + 1)
	r.managers[account.Email] = account
	return nil
}

type fakeTokenRepository struct {
	tokens map[string]int64
}

func (r *fakeTokenRepository) Set(_ context.Context, token string, customerID int64, _ time.Duration) error {
	r.tokens[token] = customerID
	return nil
}

func (r *fakeTokenRepository) Get(_ context.Context, token string) (int64, error) {
	if id, ok := r.tokens[token]; ok {
		return id, nil
	}
	return 0, apperr.NotFound("Verification token")
}

func (r *fakeTokenRepository) Delete(_ context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

func newTestService(t *testing.T) (*auth.Service, *fakeCustomerRepository, *fakeManagerRepository, *fakeTokenRepository, *sec.TokenService) {
	t.Helper()

	tokens, err := sec.NewTokenService("test-secret-for-auth-service", time.Hour)
	require.NoError(t, err)

	customers := newFakeCustomerRepository()
	managers := &fakeManagerRepository{managers: make(map[string]*manager.Manager)}
	verifyTokens := &fakeTokenRepository{tokens: make(map[string]int64)}

	service := auth.NewService(customers, managers, verifyTokens, tokens, slog.Default())
	return service, customers, managers, verifyTokens, tokens
}

// # Registration

func TestRegister_CreatesVerifiableAccount(t *testing.T) {
	service, customers, _, verifyTokens, _ := newTestService(t)

	account, err := service.Register(context.Background(), auth.RegisterInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret123",
		Phone:    "+4912345",
	})
	require.NoError(t, err)

	assert.NotZero(t, account.ID)
	assert.False(t, account.EmailVerified)
	assert.Equal(t, customer.ProviderLocal, account.Provider)

	// Password is stored hashed, never verbatim.
	stored := customers.accounts["alex@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("secret123", stored.PasswordHash))

	// A verification token was parked for the new account.
	assert.Len(t, verifyTokens.tokens, 1)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	input := auth.RegisterInput{Name: "Alex", Email: "alex@example.com", Password: "secret123"}
	_, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), input)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 400, appError.HTTPStatus)
	assert.Equal(t, "Email address already in use.", appError.Message)
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	tests := []struct {
		name  string
		input auth.RegisterInput
	}{
		{"missing_email", auth.RegisterInput{Name: "Alex", Password: "secret123"}},
		{"bad_email", auth.RegisterInput{Name: "Alex", Email: "not-an-email", Password: "secret123"}},
		{"short_password", auth.RegisterInput{Name: "Alex", Email: "a@b.com", Password: "abc"}},
		{"missing_name", auth.RegisterInput{Email: "a@b.com", Password: "secret123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tt.input)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

// # Login

func TestLogin_IssuesUserToken(t *testing.T) {
	service, _, _, _, tokens := newTestService(t)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Name: "Alex", Email: "alex@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	token, err := service.Login(context.Background(), auth.Credentials{
		Email: "alex@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := tokens.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", claims.Email)
	assert.Equal(t, string(sec.RoleUser), claims.Role)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Name: "Alex", Email: "alex@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, errWrongPassword := service.Login(context.Background(), auth.Credentials{
		Email: "alex@example.com", Password: "nope",
	})
	_, errUnknownEmail := service.Login(context.Background(), auth.Credentials{
		Email: "ghost@example.com", Password: "secret123",
	})

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownEmail)
	assert.Equal(t, apperr.As(errWrongPassword).Message, apperr.As(errUnknownEmail).Message)
	assert.Equal(t, 401, apperr.As(errWrongPassword).HTTPStatus)
}

func TestAdminLogin_IssuesAdminToken(t *testing.T) {
	service, _, managers, _, tokens := newTestService(t)

	passwordHash, err := sec.HashPassword("admin-pass")
	require.NoError(t, err)
	require.NoError(t, managers.Create(context.Background(), &manager.Manager{
		Name: "Root", Email: "admin@example.com", PasswordHash: passwordHash,
	}))

	token, err := service.AdminLogin(context.Background(), auth.Credentials{
		Email: "admin@example.com", Password: "admin-pass",
	})
	require.NoError(t, err)

	claims, err := tokens.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, string(sec.RoleAdmin), claims.Role)
}

func TestAdminLogin_CustomerCannotUseAdminDoor(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Name: "Alex", Email: "alex@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.AdminLogin(context.Background(), auth.Credentials{
		Email: "alex@example.com", Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, 401, apperr.As(err).HTTPStatus)
}

// # Token Check

func TestCheckToken_WellFormedHeaderPasses(t *testing.T) {
	service, _, _, _, tokens := newTestService(t)

	token, err := tokens.IssueToken(1, "alex@example.com", string(sec.RoleUser))
	require.NoError(t, err)

	assert.NoError(t, service.CheckToken("Bearer "+token))
}

func TestCheckToken_FailuresAreBadRequests(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	for _, header := range []string{"", "Basic abc", "Bearer not-a-token"} {
		err := service.CheckToken(header)
		require.Error(t, err)
		assert.Equal(t, 400, apperr.As(err).HTTPStatus)
	}
}

func TestCheckToken_ExpiredKeepsItsCode(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	// Issue from a second service sharing the secret but with a rewound
	// clock, so the validating side keeps real time.
	issuer, err := sec.NewTokenService("test-secret-for-auth-service", time.Hour)
	require.NoError(t, err)
	issuer.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })

	expired, err := issuer.IssueToken(1, "alex@example.com", string(sec.RoleUser))
	require.NoError(t, err)

	err = service.CheckToken("Bearer " + expired)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "TOKEN_EXPIRED", appError.Code)
	assert.Equal(t, 400, appError.HTTPStatus)
}

// # Verification

func TestVerifyEmail_ConsumesToken(t *testing.T) {
	service, customers, _, verifyTokens, _ := newTestService(t)

	account, err := service.Register(context.Background(), auth.RegisterInput{
		Name: "Alex", Email: "alex@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	var token string
	for candidate := range verifyTokens.tokens {
		token = candidate
	}
	require.NotEmpty(t, token)

	require.NoError(t, service.VerifyEmail(context.Background(), token))
	assert.True(t, customers.verified[account.ID])

	// Second use: the token is gone.
	err = service.VerifyEmail(context.Background(), token)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)
}
