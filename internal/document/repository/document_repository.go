package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lawdesk-backend/internal/apperr"
	"lawdesk-backend/internal/document/domain"
)

// documentRepository implements DocumentRepository interface
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new instance of documentRepository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{
		db: db,
	}
}

func (r *documentRepository) Create(doc *domain.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()
	return r.db.Create(doc).Error
}

func (r *documentRepository) FindByID(id string, kind domain.Kind) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.Where("id = ? AND kind = ?", id, kind).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) ListByParent(parentID *string, kind domain.Kind) ([]domain.Document, error) {
	var docs []domain.Document
	q := r.db.Where("kind = ?", kind).Order("name asc")
	if parentID == nil {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", *parentID)
	}
	if err := q.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) Rename(doc *domain.Document, name string) (*domain.Document, error) {
	doc.Name = name
	doc.UpdatedAt = time.Now()
	if err := r.db.Model(doc).Updates(map[string]interface{}{
		"name":       doc.Name,
		"updated_at": doc.UpdatedAt,
	}).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteFolderIfEmpty runs the child check and the delete on one transaction
// so a concurrently created child cannot slip between them.
func (r *documentRepository) DeleteFolderIfEmpty(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var children int64
		if err := tx.Model(&domain.Document{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
			return err
		}
		if children > 0 {
			return apperr.ErrFolderNotEmpty
		}
		return tx.Where("id = ? AND kind = ?", id, domain.KindFolder).Delete(&domain.Document{}).Error
	})
}

func (r *documentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Document{}).Error
}
