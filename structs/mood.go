package structs

type MoodEntryRequest struct {
	Mood        string `json:"mood" binding:"required"`
	EnergyLevel int    `json:"energyLevel" binding:"required,min=1,max=10"`
	Notes       string `json:"notes"`
}
