// Copyright (c) 2026 audio-server. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mfungorn/audio-server/internal/platform/constants"
	requestutil "github.com/Mfungorn/audio-server/internal/platform/request"
	"github.com/Mfungorn/audio-server/internal/platform/respond"
)

// TokenPayload carries a freshly issued access token.
type TokenPayload struct {
	Token string `json:"token"`
}

// Handler implements the HTTP layer for authentication.
type Handler struct {
	service *Service
}

// NewHandler constructs a new auth [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the public authentication endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/admin/login", handler.adminLogin)
	router.Post("/register/customer", handler.registerCustomer)
	router.Get("/check", handler.check)
	router.Get("/verify", handler.verify)

	return router
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {

	// ── 1. Payload Extraction ─────────────────────────────────────────────
	var credentials Credentials
	if err := requestutil.DecodeJSON(request, &credentials); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Application Execution ──────────────────────────────────────────
	token, err := handler.service.Login(request.Context(), credentials)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, TokenPayload{Token: token})
}

func (handler *Handler) adminLogin(writer http.ResponseWriter, request *http.Request) {
	var credentials Credentials
	if err := requestutil.DecodeJSON(request, &credentials); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.service.AdminLogin(request.Context(), credentials)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, TokenPayload{Token: token})
}

func (handler *Handler) registerCustomer(writer http.ResponseWriter, request *http.Request) {

	// ── 1. Payload Extraction ─────────────────────────────────────────────
	var input RegisterInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Application Execution ──────────────────────────────────────────
	account, err := handler.service.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Response Construction ──────────────────────────────────────────
	// Point the fresh account at its own resource.
	writer.Header().Set(constants.HeaderLocation, "/user/me")
	respond.Created(writer, account)
}

// check answers whether the presented Authorization header holds a currently
// valid token. It never requires authentication itself.
func (handler *Handler) check(writer http.ResponseWriter, request *http.Request) {
	header := request.Header.Get(constants.HeaderAuthorization)

	if err := handler.service.CheckToken(header); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Validation succeeded")
}

func (handler *Handler) verify(writer http.ResponseWriter, request *http.Request) {
	token := request.URL.Query().Get("token")

	if err := handler.service.VerifyEmail(request.Context(), token); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Email verified")
}
