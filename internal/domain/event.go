package domain

import (
	"context"
	"time"
)

// Event represents a managed event.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(name, description string, date, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:        name,
		Description: description,
		Date:        date,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventRepository defines storage operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns all events ordered ascending by date.
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	// Delete removes the event and every enrollment referencing it in a
	// single transaction. Returns ErrEventNotFound if the id does not resolve.
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for event management.
type EventService interface {
	Create(ctx context.Context, name, description, date string) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	// Update replaces every mutable field of the event.
	Update(ctx context.Context, id, name, description, date string) (*Event, error)
	Delete(ctx context.Context, id string) error
}
