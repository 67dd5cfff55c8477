package repository

import "lawdesk-backend/internal/client/domain"

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	// Create creates a client, with nested case details when present
	Create(client *domain.Client) error

	// FindByID finds a client by ID, nil if absent
	FindByID(id string) (*domain.Client, error)

	// List returns all clients with case details, newest dateOpened first
	List() ([]domain.Client, error)

	// Update saves changes to an existing client
	Update(client *domain.Client) error

	// CountByStatus counts clients with the given status
	CountByStatus(status string) (int64, error)

	// Count counts all clients
	Count() (int64, error)
}

// BillingRepository defines the interface for billing data access
type BillingRepository interface {
	// Create inserts a billing record; the unique index on client_id backs
	// the one-record-per-client rule
	Create(billing *domain.Billing) error

	// FindByClientID finds the billing record for a client, nil if absent
	FindByClientID(clientID string) (*domain.Billing, error)

	// Update saves changes to an existing billing record
	Update(billing *domain.Billing) error

	// Delete removes a billing record by ID
	Delete(id string) error
}

// CaseDetailsRepository defines the interface for case details data access
type CaseDetailsRepository interface {
	// FindByClientID finds the case details for a client, nil if absent
	FindByClientID(clientID string) (*domain.CaseDetails, error)

	// Upsert creates or replaces the case details for a client
	Upsert(details *domain.CaseDetails) error

	// Update saves changes to existing case details
	Update(details *domain.CaseDetails) error
}
