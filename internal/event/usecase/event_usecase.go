package usecase

import (
	"lawdesk-backend/internal/apperr"
	"lawdesk-backend/internal/event/domain"
	eventdto "lawdesk-backend/internal/event/dto"
	"lawdesk-backend/internal/event/repository"
)

// eventUsecase implements EventUsecase interface
type eventUsecase struct {
	eventRepo repository.EventRepository
}

// NewEventUsecase creates a new instance of eventUsecase
func NewEventUsecase(eventRepo repository.EventRepository) EventUsecase {
	return &eventUsecase{
		eventRepo: eventRepo,
	}
}

func (u *eventUsecase) CreateEvent(req *eventdto.EventRequest) (*domain.Event, error) {
	event := newEventFromRequest(req)
	if err := u.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *eventUsecase) ListEvents() ([]domain.Event, error) {
	return u.eventRepo.List()
}

func (u *eventUsecase) GetEvent(id string) (*domain.Event, error) {
	event, err := u.eventRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperr.ErrNotFound
	}
	return event, nil
}

func (u *eventUsecase) UpdateEvent(id string, req *eventdto.EventRequest) (*domain.Event, error) {
	event, err := u.eventRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperr.ErrNotFound
	}

	updated := newEventFromRequest(req)
	event.Title = updated.Title
	event.Description = updated.Description
	event.Date = updated.Date
	event.Time = updated.Time
	event.Type = updated.Type
	event.Color = updated.Color

	if err := u.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *eventUsecase) DeleteEvent(id string) error {
	event, err := u.eventRepo.FindByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return apperr.ErrNotFound
	}
	return u.eventRepo.Delete(id)
}

func newEventFromRequest(req *eventdto.EventRequest) *domain.Event {
	eventType := req.Type
	if eventType == "" {
		eventType = "other"
	}
	color := req.Color
	if color == "" {
		color = "blue"
	}
	return &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Type:        eventType,
		Color:       color,
	}
}
