package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"eventhub/internal/domain"
)

// fakeStore is a shared in-memory backing store for the fake repositories so
// cross-repo behavior (cascade deletes) can be exercised in service tests.
type fakeStore struct {
	events       map[string]*domain.Event
	participants map[string]*domain.Participant
	enrollments  map[string]*domain.Enrollment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:       make(map[string]*domain.Event),
		participants: make(map[string]*domain.Participant),
		enrollments:  make(map[string]*domain.Enrollment),
	}
}

// fakeEventRepo is an in-memory EventRepository.
type fakeEventRepo struct {
	store *fakeStore
	err   error // if set, every method returns this error
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	e.ID = uuid.NewString()
	f.store.events[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if e, ok := f.store.events[id]; ok {
		return e, nil
	}
	return nil, domain.ErrEventNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Event, 0, len(f.store.events))
	for _, e := range f.store.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.store.events[e.ID]; !ok {
		return domain.ErrEventNotFound
	}
	f.store.events[e.ID] = e
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.store.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	for enID, en := range f.store.enrollments {
		if en.EventID == id {
			delete(f.store.enrollments, enID)
		}
	}
	delete(f.store.events, id)
	return nil
}

// fakeParticipantRepo is an in-memory ParticipantRepository enforcing email uniqueness.
type fakeParticipantRepo struct {
	store *fakeStore
	err   error
}

func (f *fakeParticipantRepo) Create(ctx context.Context, p *domain.Participant) error {
	if f.err != nil {
		return f.err
	}
	for _, other := range f.store.participants {
		if other.Email == p.Email {
			return domain.ErrDuplicateEmail
		}
	}
	p.ID = uuid.NewString()
	f.store.participants[p.ID] = p
	return nil
}

func (f *fakeParticipantRepo) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.store.participants[id]; ok {
		return p, nil
	}
	return nil, domain.ErrParticipantNotFound
}

func (f *fakeParticipantRepo) GetByEmail(ctx context.Context, email string) (*domain.Participant, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.store.participants {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, domain.ErrParticipantNotFound
}

func (f *fakeParticipantRepo) List(ctx context.Context) ([]*domain.Participant, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Participant, 0, len(f.store.participants))
	for _, p := range f.store.participants {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeParticipantRepo) Update(ctx context.Context, p *domain.Participant) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.store.participants[p.ID]; !ok {
		return domain.ErrParticipantNotFound
	}
	for id, other := range f.store.participants {
		if id != p.ID && other.Email == p.Email {
			return domain.ErrDuplicateEmail
		}
	}
	f.store.participants[p.ID] = p
	return nil
}

func (f *fakeParticipantRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.store.participants[id]; !ok {
		return domain.ErrParticipantNotFound
	}
	for enID, en := range f.store.enrollments {
		if en.ParticipantID == id {
			delete(f.store.enrollments, enID)
		}
	}
	delete(f.store.participants, id)
	return nil
}

// fakeEnrollmentRepo is an in-memory EnrollmentRepository enforcing pair uniqueness.
type fakeEnrollmentRepo struct {
	store *fakeStore
	err   error
}

func (f *fakeEnrollmentRepo) Create(ctx context.Context, e *domain.Enrollment) error {
	if f.err != nil {
		return f.err
	}
	for _, en := range f.store.enrollments {
		if en.EventID == e.EventID && en.ParticipantID == e.ParticipantID {
			return domain.ErrDuplicateEnrollment
		}
	}
	e.ID = uuid.NewString()
	f.store.enrollments[e.ID] = e
	return nil
}

func (f *fakeEnrollmentRepo) DeleteByPair(ctx context.Context, eventID, participantID string) error {
	if f.err != nil {
		return f.err
	}
	for id, en := range f.store.enrollments {
		if en.EventID == eventID && en.ParticipantID == participantID {
			delete(f.store.enrollments, id)
			return nil
		}
	}
	return domain.ErrEnrollmentNotFound
}

func (f *fakeEnrollmentRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.EnrollmentWithRelations, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.EnrollmentWithRelations, 0)
	for _, en := range f.store.enrollments {
		if en.EventID == eventID {
			out = append(out, &domain.EnrollmentWithRelations{
				Enrollment:  en,
				Participant: f.store.participants[en.ParticipantID],
			})
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) ListByParticipantID(ctx context.Context, participantID string) ([]*domain.EnrollmentWithRelations, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.EnrollmentWithRelations, 0)
	for _, en := range f.store.enrollments {
		if en.ParticipantID == participantID {
			out = append(out, &domain.EnrollmentWithRelations{
				Enrollment: en,
				Event:      f.store.events[en.EventID],
			})
		}
	}
	return out, nil
}

// fakeEmailService records enrollment confirmations instead of sending them.
type fakeEmailService struct {
	sent []*domain.EnrollmentConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendEnrollmentConfirmation(ctx context.Context, data *domain.EnrollmentConfirmationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
