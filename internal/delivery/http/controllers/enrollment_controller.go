package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

type EnrollmentController struct {
	Logger  *slog.Logger
	Service domain.EnrollmentService
}

func NewEnrollmentController(logger *slog.Logger, svc domain.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		Logger:  logger,
		Service: svc,
	}
}

// EnrollRequest is the request body for POST /events/{eventID}/participants.
type EnrollRequest struct {
	ParticipantID string `json:"participant_id"`
}

// Validate implements helpers.Validator.
func (r *EnrollRequest) Validate() []string {
	if strings.TrimSpace(r.ParticipantID) == "" {
		return []string{"participant_id is required"}
	}
	return nil
}

// EnrollmentSuccessResponse is the success response envelope for POST /events/{eventID}/participants.
type EnrollmentSuccessResponse struct {
	Data  *domain.EnrollmentWithRelations `json:"data"`
	Error *helpers.APIError               `json:"error"`
}

// Enroll godoc
// @Summary Enroll a participant in an event
// @Description Adds the participant to the event. A participant may be enrolled in a given event at most once; enrolling the same pair again fails with conflict.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param body body controllers.EnrollRequest true "Participant to enroll"
// @Success 201 {object} controllers.EnrollmentSuccessResponse "data bundles the enrollment with its event and participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event or participant)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already enrolled)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants [post]
func (c *EnrollmentController) Enroll(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req EnrollRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	enrollment, err := c.Service.Enroll(r.Context(), eventID, req.ParticipantID)
	if err != nil {
		respondDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, enrollment)
}

// Unenroll godoc
// @Summary Remove a participant from an event
// @Tags enrollments
// @Param eventID path string true "Event ID (UUID)"
// @Param participantID path string true "Participant ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no such enrollment)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants/{participantID} [delete]
func (c *EnrollmentController) Unenroll(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	participantID := r.PathValue("participantID")
	if eventID == "" || participantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID or participantID")
		return
	}

	if err := c.Service.Unenroll(r.Context(), eventID, participantID); err != nil {
		respondDomainError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListEventParticipants godoc
// @Summary List the participants enrolled in an event
// @Tags enrollments
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.ParticipantListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants [get]
func (c *EnrollmentController) ListEventParticipants(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}

	participants, err := c.Service.ListEventParticipants(r.Context(), eventID)
	if err != nil {
		respondDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participants)
}

// ListParticipantEvents godoc
// @Summary List the events a participant is enrolled in
// @Tags enrollments
// @Produce json
// @Param participantID path string true "Participant ID (UUID)"
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (participant)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID}/events [get]
func (c *EnrollmentController) ListParticipantEvents(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("participantID")
	if participantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing participantID")
		return
	}

	events, err := c.Service.ListParticipantEvents(r.Context(), participantID)
	if err != nil {
		respondDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}
