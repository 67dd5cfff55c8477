package repository

import "lawdesk-backend/internal/event/domain"

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event
	Create(event *domain.Event) error

	// FindByID finds an event by ID, nil if absent
	FindByID(id string) (*domain.Event, error)

	// List returns all events
	List() ([]domain.Event, error)

	// Update saves changes to an existing event
	Update(event *domain.Event) error

	// Delete removes an event by ID
	Delete(id string) error
}
