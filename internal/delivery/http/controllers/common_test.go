package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// decodeEnvelope unmarshals the response body into the standard envelope,
// leaving data as raw JSON for the caller to interpret.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (json.RawMessage, *helpers.APIError) {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data, envelope.Error
}

// fakeEventService returns canned values per method.
type fakeEventService struct {
	event  *domain.Event
	events []*domain.Event
	err    error
}

func (f *fakeEventService) Create(ctx context.Context, name, description, date string) (*domain.Event, error) {
	return f.event, f.err
}

func (f *fakeEventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return f.event, f.err
}

func (f *fakeEventService) List(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeEventService) Update(ctx context.Context, id, name, description, date string) (*domain.Event, error) {
	return f.event, f.err
}

func (f *fakeEventService) Delete(ctx context.Context, id string) error {
	return f.err
}

type fakeParticipantService struct {
	participant  *domain.Participant
	participants []*domain.Participant
	exists       bool
	err          error
}

func (f *fakeParticipantService) Create(ctx context.Context, name, email, phone string) (*domain.Participant, error) {
	return f.participant, f.err
}

func (f *fakeParticipantService) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	return f.participant, f.err
}

func (f *fakeParticipantService) List(ctx context.Context) ([]*domain.Participant, error) {
	return f.participants, f.err
}

func (f *fakeParticipantService) EmailExists(ctx context.Context, email string) (bool, error) {
	return f.exists, f.err
}

func (f *fakeParticipantService) Update(ctx context.Context, id, name, email, phone string) (*domain.Participant, error) {
	return f.participant, f.err
}

func (f *fakeParticipantService) Delete(ctx context.Context, id string) error {
	return f.err
}

type fakeEnrollmentService struct {
	enrollment   *domain.EnrollmentWithRelations
	participants []*domain.Participant
	events       []*domain.Event
	err          error

	gotEventID       string
	gotParticipantID string
}

func (f *fakeEnrollmentService) Enroll(ctx context.Context, eventID, participantID string) (*domain.EnrollmentWithRelations, error) {
	f.gotEventID = eventID
	f.gotParticipantID = participantID
	return f.enrollment, f.err
}

func (f *fakeEnrollmentService) Unenroll(ctx context.Context, eventID, participantID string) error {
	f.gotEventID = eventID
	f.gotParticipantID = participantID
	return f.err
}

func (f *fakeEnrollmentService) ListEventParticipants(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	f.gotEventID = eventID
	return f.participants, f.err
}

func (f *fakeEnrollmentService) ListParticipantEvents(ctx context.Context, participantID string) ([]*domain.Event, error) {
	f.gotParticipantID = participantID
	return f.events, f.err
}
