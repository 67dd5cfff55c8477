package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lawdesk-backend/internal/apperr"
	"lawdesk-backend/internal/client/domain"
)

// billingRepository implements BillingRepository interface
type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository creates a new instance of billingRepository
func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{
		db: db,
	}
}

func (r *billingRepository) Create(billing *domain.Billing) error {
	billing.ID = uuid.New().String()
	billing.CreatedAt = time.Now()
	billing.UpdatedAt = time.Now()
	err := r.db.Create(billing).Error
	if err != nil && isUniqueViolation(err) {
		return apperr.ErrBillingExists
	}
	return err
}

func (r *billingRepository) FindByClientID(clientID string) (*domain.Billing, error) {
	var billing domain.Billing
	err := r.db.Where("client_id = ?", clientID).First(&billing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &billing, nil
}

func (r *billingRepository) Update(billing *domain.Billing) error {
	billing.UpdatedAt = time.Now()
	return r.db.Save(billing).Error
}

func (r *billingRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Billing{}).Error
}

// isUniqueViolation matches the postgres duplicate-key error so the 409 is
// backed by the constraint, not only the pre-check.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key value") ||
		strings.Contains(err.Error(), "SQLSTATE 23505")
}
