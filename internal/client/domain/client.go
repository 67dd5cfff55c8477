package domain

import "time"

const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

// Client is a law-firm client record with its case lifecycle status.
type Client struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null"`
	Type        string       `json:"type"`
	Status      string       `json:"status" gorm:"default:Open;index"`
	DateOpened  string       `json:"dateOpened"`
	CaseDetails *CaseDetails `json:"caseDetails,omitempty" gorm:"foreignKey:ClientID"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// CaseDetails holds the court filing information, one record per client.
type CaseDetails struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	ClientID       string    `json:"clientId" gorm:"uniqueIndex;not null"`
	CaseNumber     string    `json:"caseNumber"`
	FilingDate     string    `json:"filingDate"`
	CaseSummary    string    `json:"caseSummary"`
	Station        string    `json:"station"`
	TrackingNumber string    `json:"trackingNumber"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Billing is the fee summary, one record per client. AmountRemaining is
// always computed server-side as TotalAmount - AmountPaid.
type Billing struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	ClientID        string    `json:"clientId" gorm:"uniqueIndex;not null"`
	ClientName      string    `json:"clientName"`
	TotalAmount     float64   `json:"totalAmount"`
	AmountPaid      float64   `json:"amountPaid"`
	AmountRemaining float64   `json:"amountRemaining"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Stats is the dashboard counter summary.
type Stats struct {
	OpenCases    int64 `json:"openCases"`
	ClosedCases  int64 `json:"closedCases"`
	TotalClients int64 `json:"totalClients"`
}
