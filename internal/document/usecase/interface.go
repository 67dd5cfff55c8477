package usecase

import (
	"io"

	"lawdesk-backend/internal/document/domain"
)

// RootFolderID is the sentinel clients use for "no parent". It is translated
// to a null parent reference at the boundary of every operation and never
// stored.
const RootFolderID = "root"

// DocumentUsecase defines the document hierarchy business logic
type DocumentUsecase interface {
	// List returns the nodes under a parent, folders first, each group
	// alphabetically ordered by name
	List(folderID string) ([]domain.Document, error)

	// CreateFolder creates a folder; the name must be non-empty after
	// trimming and the parent must be an existing folder
	CreateFolder(name, parentID string) (*domain.Document, error)

	// Upload writes the content to the blob store and records the file node
	Upload(name, parentID, mimeType string, r io.Reader) (*domain.Document, error)

	// RenameFolder renames a folder node
	RenameFolder(id, name string) (*domain.Document, error)

	// RenameFile renames a file node
	RenameFile(id, name string) (*domain.Document, error)

	// DeleteFolder deletes a folder, failing if it still has children
	DeleteFolder(id string) error

	// DeleteFile deletes the file metadata and best-effort removes the blob
	DeleteFile(id string) error

	// GetFile returns a file node for download
	GetFile(id string) (*domain.Document, error)

	// OpenContent opens the stored bytes of a file node
	OpenContent(doc *domain.Document) (io.ReadCloser, error)
}
