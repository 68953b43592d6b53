package structs

import "momentum/models"

type ImportRequest struct {
	Habits []models.Habit `json:"habits"`
	Tasks  []models.Task  `json:"tasks"`
	Moods  []models.Mood  `json:"moods"`
}
