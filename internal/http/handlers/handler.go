package handlers

import (
	"travelbook/internal/services"
	"travelbook/internal/store"
)

// Handler bundles the service dependencies shared by all endpoints.
type Handler struct {
	Store     *store.Store
	Search    services.SearchService
	Sessions  *services.SessionService
	Flow      services.FlowService
	JWTSecret []byte
}
