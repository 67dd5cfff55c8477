package dto

type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Type        string `json:"type"`
	Color       string `json:"color"`
}
