package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "meetspace/internal/delivery/http/helpers"
	"meetspace/internal/delivery/http/middleware"
	"meetspace/internal/domain"
)

// CreateEventRequest is the request body for POST /v1/events.
// Validation is domain.EventInput's.
type CreateEventRequest struct {
	domain.EventInput
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Publish an event
// @Description Create an event owned by the calling agent. Requires tier "readwrite". HTML in description is stripped.
// @Tags events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse{data=domain.Event}
// @Failure 401 {object} helpers.APIResponse "error.code: missing_api_key or invalid_api_key"
// @Failure 403 {object} helpers.APIResponse "error.code: insufficient_tier"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeMissingAPIKey, "missing "+middleware.APIKeyHeader+" header")
		return
	}
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), identity.ID, req.EventInput)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Get godoc
// @Summary Get an event
// @Description Fetch a single event by its id.
// @Tags events
// @Produce json
// @Security ApiKeyAuth
// @Param eventID path string true "Event ID (ULID)"
// @Success 200 {object} helpers.APIResponse{data=domain.Event}
// @Failure 401 {object} helpers.APIResponse "error.code: missing_api_key or invalid_api_key"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/events/{eventID} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	eventID := strings.TrimSpace(r.PathValue("eventID"))
	if eventID == "" {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "resource not found")
		return
	}
	event, err := c.Service.GetByID(r.Context(), eventID)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// Nearby godoc
// @Summary Find upcoming events nearby
// @Description Upcoming events within radius miles of (lat, lng), ordered by id. Follow next_cursor until it is null to read every page.
// @Tags events
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude, -90 to 90"
// @Param lng query number true "Longitude, -180 to 180"
// @Param radius query number true "Radius in miles, 0.1 to 100"
// @Param cursor query string false "next_cursor from the previous page"
// @Param limit query int false "Page size, 1 to 100 (default 20)"
// @Success 200 {object} helpers.APIResponse{data=domain.EventPage}
// @Failure 401 {object} helpers.APIResponse "error.code: missing_api_key or invalid_api_key"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/events/nearby [get]
func (c *EventController) Nearby(w http.ResponseWriter, r *http.Request) {
	params, errs := h.ParseNearbyQuery(r)
	if len(errs) > 0 {
		h.WriteJSONError(w, http.StatusUnprocessableEntity, h.ErrCodeValidation, strings.Join(errs, "; "))
		return
	}
	page, err := c.Service.Nearby(r.Context(), params.Lat, params.Lng, params.Radius, params.Cursor, params.Limit)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, page)
}
