package structs

type AwardXPRequest struct {
	Type string `json:"type" binding:"required"` // "habit" or "task"
}

type UpdateScoreRequest struct {
	XP     int    `json:"xp"`
	Badge  string `json:"badge"`
	Streak int    `json:"streak"`
}
