package structs

import (
	"time"

	"momentum/models"
)

type CreateTaskRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	DueDate     *time.Time       `json:"dueDate"`
	Priority    string           `json:"priority"`
	Category    string           `json:"category"`
	Location    *models.Location `json:"location"`
}

type UpdateTaskRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	DueDate     *time.Time       `json:"dueDate"`
	Priority    *string          `json:"priority"`
	Status      *string          `json:"status"`
	Category    *string          `json:"category"`
	Location    *models.Location `json:"location"`
}
