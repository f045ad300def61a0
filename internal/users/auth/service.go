// Copyright (c) 2026 audio-server. All rights reserved.

/*
Package auth implements registration, login, and token verification for both
account kinds.

Customers and managers authenticate against separate tables through separate
endpoints, but both end up with the same kind of signed token; only the role
claim differs. Email verification state is tracked on the customer record,
with the one-shot verification tokens parked in Redis until they are used or
expire.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Mfungorn/audio-server/internal/platform/apperr"
	"github.com/Mfungorn/audio-server/internal/platform/constants"
	"github.com/Mfungorn/audio-server/internal/platform/sec"
	"github.com/Mfungorn/audio-server/internal/platform/validate"
	"github.com/Mfungorn/audio-server/internal/users/customer"
	"github.com/Mfungorn/audio-server/internal/users/manager"
)

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	customers          customer.Repository
	managers           manager.Repository
	verificationTokens VerificationTokenRepository
	tokens             *sec.TokenService
	logger             *slog.Logger
}

// NewService constructs a new auth [Service] with its dependencies.
func NewService(
	customers customer.Repository,
	managers manager.Repository,
	verificationTokens VerificationTokenRepository,
	tokens *sec.TokenService,
	logger *slog.Logger,
) *Service {
	return &Service{
		customers:          customers,
		managers:           managers,
		verificationTokens: verificationTokens,
		tokens:             tokens,
		logger:             logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new customer.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

/*
Register validates, hashes, and persists a brand new customer account.

Description: A taken email is reported as a plain 400 with the exact message
clients match on. The verification token is a best-effort side effect: if
Redis is down, the account still registers and verification can be re-issued
later.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *customer.Customer: Created entity
  - error: Validation, duplicate-email, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*customer.Customer, error) {
	validator := &validate.Validator{}
	validator.Required("name", input.Name).MaxLen("name", input.Name, 200)
	validator.Required("email", input.Email).Email("email", input.Email)
	validator.Required("password", input.Password).MinLen("password", input.Password, 6)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	taken, err := service.customers.ExistsByEmail(context, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.BadRequest("Email address already in use.")
	}

	// Prevent storing plain-text passwords. Default cost balances security
	// against CPU load during registration spikes.
	passwordHash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	account := &customer.Customer{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: passwordHash,
		Provider:     customer.ProviderLocal,
	}
	if err := service.customers.Create(context, account); err != nil {
		return nil, err
	}

	// Park a verification token in Redis as an async-ready side effect.
	token, err := sec.GenerateSecureToken(constants.VerificationTokenLength)
	if err == nil {
		_ = service.verificationTokens.Set(context, token, account.ID, constants.VerificationTokenTTL)
		// TODO: hand the verification link to a mail sender once one exists
	}

	service.logger.Info("customer_registered",
		slog.Int64("customer_id", account.ID),
		slog.String("email", account.Email),
	)
	return account, nil
}

// # Authentication Flow

// Credentials defines an authentication attempt for either account kind.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Login authenticates a customer and returns a signed access token carrying the
USER role.

A missing account and a wrong password are deliberately indistinguishable in
the returned error.
*/
func (service *Service) Login(context context.Context, credentials Credentials) (string, error) {
	account, err := service.customers.FindByEmail(context, credentials.Email)
	if err != nil {
		return "", apperr.InvalidCredentials()
	}

	if !sec.CheckPasswordHash(credentials.Password, account.PasswordHash) {
		service.logger.Warn("customer_login_rejected", slog.String("email", credentials.Email))
		return "", apperr.InvalidCredentials()
	}

	token, err := service.tokens.IssueToken(account.ID, account.Email, string(sec.RoleUser))
	if err != nil {
		return "", fmt.Errorf("auth_service_sign_failed: %w", err)
	}

	service.logger.Info("customer_logged_in", slog.Int64("customer_id", account.ID))
	return token, nil
}

/*
AdminLogin authenticates a manager and returns a signed access token carrying
the ADMIN role.
*/
func (service *Service) AdminLogin(context context.Context, credentials Credentials) (string, error) {
	account, err := service.managers.FindByEmail(context, credentials.Email)
	if err != nil {
		return "", apperr.InvalidCredentials()
	}

	if !sec.CheckPasswordHash(credentials.Password, account.PasswordHash) {
		service.logger.Warn("admin_login_rejected", slog.String("email", credentials.Email))
		return "", apperr.InvalidCredentials()
	}

	token, err := service.tokens.IssueToken(account.ID, account.Email, string(sec.RoleAdmin))
	if err != nil {
		return "", fmt.Errorf("auth_service_sign_failed: %w", err)
	}

	service.logger.Info("admin_logged_in", slog.Int64("manager_id", account.ID))
	return token, nil
}

/*
CheckToken validates a raw Authorization header value: scheme, signature,
issuer, and expiry.

This endpoint is advisory, so every failure is a plain 400 rather than the
401 the middleware would produce. Expiry keeps its dedicated TOKEN_EXPIRED
code so clients know re-authenticating will help.
*/
func (service *Service) CheckToken(header string) error {
	tokenString, err := sec.FromAuthHeader(header)
	if err != nil {
		return apperr.BadRequest("Validation failed")
	}

	if _, err := service.tokens.ParseToken(tokenString); err != nil {
		if appError := apperr.As(err); appError != nil && appError.Code == "TOKEN_EXPIRED" {
			return &apperr.AppError{
				Code:       "TOKEN_EXPIRED",
				Message:    "Token expired",
				HTTPStatus: http.StatusBadRequest,
			}
		}
		return apperr.BadRequest("Validation failed")
	}
	return nil
}

// # Email Verification

/*
VerifyEmail consumes a verification token and flips the customer's
email_verified flag. The token is single-use: it is deleted even though its
TTL would eventually reclaim it anyway.
*/
func (service *Service) VerifyEmail(context context.Context, token string) error {
	if token == "" {
		return apperr.BadRequest("Verification token is required")
	}

	customerID, err := service.verificationTokens.Get(context, token)
	if err != nil {
		return err
	}

	if err := service.customers.MarkVerified(context, customerID); err != nil {
		return err
	}
	_ = service.verificationTokens.Delete(context, token)

	service.logger.Info("customer_email_verified", slog.Int64("customer_id", customerID))
	return nil
}
