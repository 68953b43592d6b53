package models

import "time"

// BadgeInfo describes a badge for the client (catalog entry, not an award)
type BadgeInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// GamificationEvent is broadcast over the websocket feed when XP or badges
// are awarded
type GamificationEvent struct {
	Type      string    `json:"type"` // "badge_awarded", "xp_awarded"
	UserID    string    `json:"userId"`
	BadgeID   string    `json:"badgeId,omitempty"`
	Points    int       `json:"points,omitempty"`
	TotalXP   int       `json:"totalXP,omitempty"`
	Level     int       `json:"level,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
