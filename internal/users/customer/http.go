// Copyright (c) 2026 audio-server. All rights reserved.

package customer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/Mfungorn/audio-server/internal/platform/request"
	"github.com/Mfungorn/audio-server/internal/platform/respond"
)

// Handler implements the HTTP layer for the authenticated customer surface.
type Handler struct {
	service *Service
}

// NewHandler constructs a new customer [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the customer endpoints to the /user route group.
// The group is expected to be mounted behind authentication already.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/me", handler.me)
	router.Get("/profile", handler.profile)
	router.Put("/profile", handler.updateProfile)
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	customerID, err := requestutil.RequiredPrincipalID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.Get(request.Context(), customerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	customerID, err := requestutil.RequiredPrincipalID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.Profile(request.Context(), customerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	customerID, err := requestutil.RequiredPrincipalID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input ProfileUpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.UpdateProfile(request.Context(), customerID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}
