package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

type ParticipantController struct {
	Logger  *slog.Logger
	Service domain.ParticipantService
}

func NewParticipantController(logger *slog.Logger, svc domain.ParticipantService) *ParticipantController {
	return &ParticipantController{
		Logger:  logger,
		Service: svc,
	}
}

// ParticipantRequest is the request body for POST /participants and PUT /participants/{participantID}.
type ParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Validate implements helpers.Validator.
func (r *ParticipantRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	return errs
}

// ParticipantSuccessResponse is the success response envelope for single-participant endpoints.
type ParticipantSuccessResponse struct {
	Data  *domain.Participant `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ParticipantListSuccessResponse is the success response envelope for GET /participants.
type ParticipantListSuccessResponse struct {
	Data  []*domain.Participant `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// EmailExistsResponse is the payload for GET /participants/check-email.
type EmailExistsResponse struct {
	Exists bool `json:"exists"`
}

// Create godoc
// @Summary Create a participant
// @Description Creates a participant. Email must be unique (case-insensitive); phone must contain 10 or 11 digits.
// @Tags participants
// @Accept json
// @Produce json
// @Param body body controllers.ParticipantRequest true "Participant fields"
// @Success 201 {object} controllers.ParticipantSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate email)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants [post]
func (c *ParticipantController) Create(w http.ResponseWriter, r *http.Request) {
	var req ParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	participant, err := c.Service.Create(r.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		respondDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, participant)
}

// List godoc
// @Summary List all participants
// @Tags participants
// @Produce json
// @Success 200 {object} controllers.ParticipantListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants [get]
func (c *ParticipantController) List(w http.ResponseWriter, r *http.Request) {
	participants, err := c.Service.List(r.Context())
	if err != nil {
		respondDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participants)
}

// Get godoc
// @Summary Get a participant
// @Tags participants
// @Produce json
// @Param participantID path string true "Participant ID (UUID)"
// @Success 200 {object} controllers.ParticipantSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID} [get]
func (c *ParticipantController) Get(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("participantID")
	if participantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing participantID")
		return
	}

	participant, err := c.Service.GetByID(r.Context(), participantID)
	if err != nil {
		respondDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participant)
}

// CheckEmail godoc
// @Summary Check whether an email is already registered
// @Tags participants
// @Produce json
// @Param email query string true "Email to check"
// @Success 200 {object} controllers.EmailExistsResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed email)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/check-email [get]
func (c *ParticipantController) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "email query parameter is required")
		return
	}

	exists, err := c.Service.EmailExists(r.Context(), email)
	if err != nil {
		respondDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EmailExistsResponse{Exists: exists})
}

// Update godoc
// @Summary Update a participant
// @Description Replaces every mutable field of the participant. Changing the email to one used by a different participant fails with conflict.
// @Tags participants
// @Accept json
// @Produce json
// @Param participantID path string true "Participant ID (UUID)"
// @Param body body controllers.ParticipantRequest true "Participant fields"
// @Success 200 {object} controllers.ParticipantSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate email)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID} [put]
func (c *ParticipantController) Update(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("participantID")
	if participantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing participantID")
		return
	}
	var req ParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	participant, err := c.Service.Update(r.Context(), participantID, req.Name, req.Email, req.Phone)
	if err != nil {
		respondDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participant)
}

// Delete godoc
// @Summary Delete a participant
// @Description Deletes the participant and every enrollment referencing them.
// @Tags participants
// @Param participantID path string true "Participant ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID} [delete]
func (c *ParticipantController) Delete(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("participantID")
	if participantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing participantID")
		return
	}

	if err := c.Service.Delete(r.Context(), participantID); err != nil {
		respondDomainError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
