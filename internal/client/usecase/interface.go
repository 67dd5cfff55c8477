package usecase

import (
	"lawdesk-backend/internal/client/domain"
	clientdto "lawdesk-backend/internal/client/dto"
)

// ClientUsecase defines the client, billing and case-details business logic
type ClientUsecase interface {
	// CreateClient creates a client, with nested case details when provided
	CreateClient(req *clientdto.CreateClientRequest) (*domain.Client, error)

	// ListClients returns all clients, newest dateOpened first
	ListClients() ([]domain.Client, error)

	// UpdateClient applies partial updates to a client
	UpdateClient(id string, req *clientdto.UpdateClientRequest) (*domain.Client, error)

	// Stats returns the dashboard counters
	Stats() (*domain.Stats, error)

	// GetBilling returns the billing record for a client
	GetBilling(clientID string) (*domain.Billing, error)

	// CreateBilling creates the single billing record for a client
	CreateBilling(clientID string, req *clientdto.BillingRequest) (*domain.Billing, error)

	// UpdateBilling replaces the amounts on an existing billing record
	UpdateBilling(clientID string, req *clientdto.BillingRequest) (*domain.Billing, error)

	// DeleteBilling removes the billing record for a client
	DeleteBilling(clientID string) error

	// GetCaseDetails returns the case details for a client
	GetCaseDetails(clientID string) (*domain.CaseDetails, error)

	// UpsertCaseDetails creates or replaces the case details for a client
	UpsertCaseDetails(clientID string, req *clientdto.CaseDetailsPayload) (*domain.CaseDetails, error)

	// UpdateCaseDetails updates existing case details
	UpdateCaseDetails(clientID string, req *clientdto.CaseDetailsPayload) (*domain.CaseDetails, error)
}
