package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lawdesk-backend/internal/client/domain"
)

// clientRepository implements ClientRepository interface
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new instance of clientRepository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{
		db: db,
	}
}

func (r *clientRepository) Create(client *domain.Client) error {
	client.ID = uuid.New().String()
	client.CreatedAt = time.Now()
	client.UpdatedAt = time.Now()
	if client.CaseDetails != nil {
		client.CaseDetails.ID = uuid.New().String()
		client.CaseDetails.ClientID = client.ID
		client.CaseDetails.CreatedAt = time.Now()
		client.CaseDetails.UpdatedAt = time.Now()
	}
	return r.db.Create(client).Error
}

func (r *clientRepository) FindByID(id string) (*domain.Client, error) {
	var client domain.Client
	err := r.db.Preload("CaseDetails").Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) List() ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.Preload("CaseDetails").Order("date_opened desc").Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) Update(client *domain.Client) error {
	client.UpdatedAt = time.Now()
	return r.db.Omit("CaseDetails").Save(client).Error
}

func (r *clientRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Client{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *clientRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Client{}).Count(&count).Error
	return count, err
}
