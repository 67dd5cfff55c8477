package repository

import "lawdesk-backend/internal/document/domain"

// DocumentRepository defines the interface for document node data access
type DocumentRepository interface {
	// Create creates a new node
	Create(doc *domain.Document) error

	// FindByID finds a node by ID and kind, nil if absent
	FindByID(id string, kind domain.Kind) (*domain.Document, error)

	// ListByParent lists nodes of one kind under a parent, alphabetically
	ListByParent(parentID *string, kind domain.Kind) ([]domain.Document, error)

	// Rename updates a node's name and returns the updated node
	Rename(doc *domain.Document, name string) (*domain.Document, error)

	// DeleteFolderIfEmpty deletes a folder in a single transaction,
	// failing with apperr.ErrFolderNotEmpty if it has any children
	DeleteFolderIfEmpty(id string) error

	// Delete removes a node by ID
	Delete(id string) error
}
