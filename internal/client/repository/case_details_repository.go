package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lawdesk-backend/internal/client/domain"
)

// caseDetailsRepository implements CaseDetailsRepository interface
type caseDetailsRepository struct {
	db *gorm.DB
}

// NewCaseDetailsRepository creates a new instance of caseDetailsRepository
func NewCaseDetailsRepository(db *gorm.DB) CaseDetailsRepository {
	return &caseDetailsRepository{
		db: db,
	}
}

func (r *caseDetailsRepository) FindByClientID(clientID string) (*domain.CaseDetails, error) {
	var details domain.CaseDetails
	err := r.db.Where("client_id = ?", clientID).First(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &details, nil
}

func (r *caseDetailsRepository) Upsert(details *domain.CaseDetails) error {
	if details.ID == "" {
		details.ID = uuid.New().String()
		details.CreatedAt = time.Now()
	}
	details.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"case_number", "filing_date", "case_summary", "station", "tracking_number", "updated_at",
		}),
	}).Create(details).Error
}

func (r *caseDetailsRepository) Update(details *domain.CaseDetails) error {
	details.UpdatedAt = time.Now()
	return r.db.Save(details).Error
}
