package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CaseDetailsPayload struct {
	CaseNumber     string `json:"caseNumber"`
	FilingDate     string `json:"filingDate"`
	CaseSummary    string `json:"caseSummary"`
	Station        string `json:"station"`
	TrackingNumber string `json:"trackingNumber"`
}

type CreateClientRequest struct {
	Name        string              `json:"name" binding:"required"`
	Type        string              `json:"type"`
	Status      string              `json:"status"`
	DateOpened  string              `json:"dateOpened"`
	CaseDetails *CaseDetailsPayload `json:"caseDetails"`
}

// UpdateClientRequest carries partial client updates; nil fields are left
// untouched.
type UpdateClientRequest struct {
	Name       *string `json:"name"`
	Type       *string `json:"type"`
	Status     *string `json:"status"`
	DateOpened *string `json:"dateOpened"`
}

type BillingRequest struct {
	ClientName  string   `json:"clientName"`
	TotalAmount *float64 `json:"totalAmount"`
	AmountPaid  *float64 `json:"amountPaid"`
}

// Validate enforces the billing amount rules before any store access.
func (r BillingRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.TotalAmount, validation.NotNil, validation.By(nonNegative)),
		validation.Field(&r.AmountPaid, validation.NotNil, validation.By(nonNegative)),
	); err != nil {
		return err
	}
	if *r.AmountPaid > *r.TotalAmount {
		return validation.NewError("validation_amount_paid", "amount paid cannot exceed total amount")
	}
	return nil
}

func nonNegative(value interface{}) error {
	v, _ := value.(*float64)
	if v != nil && *v < 0 {
		return validation.NewError("validation_negative_amount", "amount must not be negative")
	}
	return nil
}
