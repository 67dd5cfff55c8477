package usecase

import (
	"lawdesk-backend/internal/apperr"
	"lawdesk-backend/internal/client/domain"
	clientdto "lawdesk-backend/internal/client/dto"
	"lawdesk-backend/internal/client/repository"
)

// clientUsecase implements ClientUsecase interface
type clientUsecase struct {
	clientRepo  repository.ClientRepository
	billingRepo repository.BillingRepository
	caseRepo    repository.CaseDetailsRepository
}

// NewClientUsecase creates a new instance of clientUsecase
func NewClientUsecase(clientRepo repository.ClientRepository, billingRepo repository.BillingRepository, caseRepo repository.CaseDetailsRepository) ClientUsecase {
	return &clientUsecase{
		clientRepo:  clientRepo,
		billingRepo: billingRepo,
		caseRepo:    caseRepo,
	}
}

func (u *clientUsecase) CreateClient(req *clientdto.CreateClientRequest) (*domain.Client, error) {
	status := req.Status
	if status == "" {
		status = domain.StatusOpen
	}

	client := &domain.Client{
		Name:       req.Name,
		Type:       req.Type,
		Status:     status,
		DateOpened: req.DateOpened,
	}
	if req.CaseDetails != nil {
		client.CaseDetails = &domain.CaseDetails{
			CaseNumber:     req.CaseDetails.CaseNumber,
			FilingDate:     req.CaseDetails.FilingDate,
			CaseSummary:    req.CaseDetails.CaseSummary,
			Station:        req.CaseDetails.Station,
			TrackingNumber: req.CaseDetails.TrackingNumber,
		}
	}

	if err := u.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (u *clientUsecase) ListClients() ([]domain.Client, error) {
	return u.clientRepo.List()
}

func (u *clientUsecase) UpdateClient(id string, req *clientdto.UpdateClientRequest) (*domain.Client, error) {
	client, err := u.clientRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperr.ErrNotFound
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Type != nil {
		client.Type = *req.Type
	}
	if req.Status != nil {
		client.Status = *req.Status
	}
	if req.DateOpened != nil {
		client.DateOpened = *req.DateOpened
	}

	if err := u.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (u *clientUsecase) Stats() (*domain.Stats, error) {
	open, err := u.clientRepo.CountByStatus(domain.StatusOpen)
	if err != nil {
		return nil, err
	}
	closed, err := u.clientRepo.CountByStatus(domain.StatusClosed)
	if err != nil {
		return nil, err
	}
	total, err := u.clientRepo.Count()
	if err != nil {
		return nil, err
	}
	return &domain.Stats{OpenCases: open, ClosedCases: closed, TotalClients: total}, nil
}

func (u *clientUsecase) GetBilling(clientID string) (*domain.Billing, error) {
	billing, err := u.billingRepo.FindByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, apperr.ErrNotFound
	}
	return billing, nil
}

func (u *clientUsecase) CreateBilling(clientID string, req *clientdto.BillingRequest) (*domain.Billing, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	client, err := u.clientRepo.FindByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperr.ErrNotFound
	}

	existing, err := u.billingRepo.FindByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrBillingExists
	}

	billing := &domain.Billing{
		ClientID:        clientID,
		ClientName:      req.ClientName,
		TotalAmount:     *req.TotalAmount,
		AmountPaid:      *req.AmountPaid,
		AmountRemaining: *req.TotalAmount - *req.AmountPaid,
	}
	if err := u.billingRepo.Create(billing); err != nil {
		return nil, err
	}
	return billing, nil
}

func (u *clientUsecase) UpdateBilling(clientID string, req *clientdto.BillingRequest) (*domain.Billing, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	billing, err := u.billingRepo.FindByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, apperr.ErrNotFound
	}

	if req.ClientName != "" {
		billing.ClientName = req.ClientName
	}
	billing.TotalAmount = *req.TotalAmount
	billing.AmountPaid = *req.AmountPaid
	billing.AmountRemaining = *req.TotalAmount - *req.AmountPaid

	if err := u.billingRepo.Update(billing); err != nil {
		return nil, err
	}
	return billing, nil
}

func (u *clientUsecase) DeleteBilling(clientID string) error {
	billing, err := u.billingRepo.FindByClientID(clientID)
	if err != nil {
		return err
	}
	if billing == nil {
		return apperr.ErrNotFound
	}
	return u.billingRepo.Delete(billing.ID)
}

func (u *clientUsecase) GetCaseDetails(clientID string) (*domain.CaseDetails, error) {
	details, err := u.caseRepo.FindByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, apperr.ErrNotFound
	}
	return details, nil
}

func (u *clientUsecase) UpsertCaseDetails(clientID string, req *clientdto.CaseDetailsPayload) (*domain.CaseDetails, error) {
	client, err := u.clientRepo.FindByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperr.ErrNotFound
	}

	details, err := u.caseRepo.FindByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		details = &domain.CaseDetails{ClientID: clientID}
	}
	applyCaseDetails(details, req)

	if err := u.caseRepo.Upsert(details); err != nil {
		return nil, err
	}
	return details, nil
}

func (u *clientUsecase) UpdateCaseDetails(clientID string, req *clientdto.CaseDetailsPayload) (*domain.CaseDetails, error) {
	details, err := u.caseRepo.FindByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, apperr.ErrNotFound
	}
	applyCaseDetails(details, req)

	if err := u.caseRepo.Update(details); err != nil {
		return nil, err
	}
	return details, nil
}

func applyCaseDetails(details *domain.CaseDetails, req *clientdto.CaseDetailsPayload) {
	details.CaseNumber = req.CaseNumber
	details.FilingDate = req.FilingDate
	details.CaseSummary = req.CaseSummary
	details.Station = req.Station
	details.TrackingNumber = req.TrackingNumber
}
