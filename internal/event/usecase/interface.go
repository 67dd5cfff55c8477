package usecase

import (
	"lawdesk-backend/internal/event/domain"
	eventdto "lawdesk-backend/internal/event/dto"
)

// EventUsecase defines the calendar event business logic
type EventUsecase interface {
	// CreateEvent creates a diary event with default type/color
	CreateEvent(req *eventdto.EventRequest) (*domain.Event, error)

	// ListEvents returns all events
	ListEvents() ([]domain.Event, error)

	// GetEvent loads an event by ID
	GetEvent(id string) (*domain.Event, error)

	// UpdateEvent replaces an event's fields
	UpdateEvent(id string, req *eventdto.EventRequest) (*domain.Event, error)

	// DeleteEvent removes an event
	DeleteEvent(id string) error
}
