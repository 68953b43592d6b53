package structs

import "momentum/models"

type CreateHabitRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Frequency   string           `json:"frequency"`
	Goal        int              `json:"goal"`
	Color       string           `json:"color"`
	Location    *models.Location `json:"location"`
}

type CompleteHabitRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, defaults to today
}
