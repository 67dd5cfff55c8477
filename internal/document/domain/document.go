package domain

import "time"

// Kind distinguishes folder nodes from file nodes. It is immutable after
// creation and filters every lookup so a file ID can never be treated as a
// folder or vice versa.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// Document is a node in the hierarchy. ParentID nil means root; the root is
// never itself a stored node.
type Document struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Kind        Kind      `json:"type" gorm:"column:kind;index;not null"`
	ParentID    *string   `json:"parentId" gorm:"index"`
	MimeType    string    `json:"mimeType,omitempty"`
	Size        int64     `json:"size,omitempty"`
	StoragePath string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewFolder builds a folder node. Folders never carry file-only fields.
func NewFolder(name string, parentID *string) *Document {
	return &Document{
		Name:     name,
		Kind:     KindFolder,
		ParentID: parentID,
	}
}

// NewFile builds a file node with its blob metadata.
func NewFile(name string, parentID *string, mimeType string, size int64, storagePath string) *Document {
	return &Document{
		Name:        name,
		Kind:        KindFile,
		ParentID:    parentID,
		MimeType:    mimeType,
		Size:        size,
		StoragePath: storagePath,
	}
}
