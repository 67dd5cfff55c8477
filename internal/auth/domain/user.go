package domain

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-"` // Never return password in JSON
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	Provider  string    `json:"provider"` // "email" or "google"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
