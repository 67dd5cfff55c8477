package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lawdesk-backend/internal/event/domain"
)

// eventRepository implements EventRepository interface
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new instance of eventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{
		db: db,
	}
}

func (r *eventRepository) Create(event *domain.Event) error {
	event.ID = uuid.New().String()
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	return r.db.Create(event).Error
}

func (r *eventRepository) FindByID(id string) (*domain.Event, error) {
	var event domain.Event
	err := r.db.Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List() ([]domain.Event, error) {
	var events []domain.Event
	if err := r.db.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Update(event *domain.Event) error {
	event.UpdatedAt = time.Now()
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Event{}).Error
}
