package domain

import "time"

// Event is a calendar/diary entry such as a hearing or filing deadline.
type Event struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Date        string    `json:"date" gorm:"not null"`
	Time        string    `json:"time" gorm:"not null"`
	Type        string    `json:"type" gorm:"default:other"`
	Color       string    `json:"color" gorm:"default:blue"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
