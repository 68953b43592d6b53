package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a named coordinate, used for the user's home location
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address,omitempty" json:"address,omitempty"`
}

// GoogleCalendarTokens holds OAuth credentials for calendar sync
type GoogleCalendarTokens struct {
	AccessToken  string     `bson:"accessToken,omitempty" json:"-"`
	RefreshToken string     `bson:"refreshToken,omitempty" json:"-"`
	ExpiryDate   *time.Time `bson:"expiryDate,omitempty" json:"-"`
}

type NotificationPreferences struct {
	BrowserNotifications bool   `bson:"browserNotifications" json:"browserNotifications"`
	EmailNotifications   bool   `bson:"emailNotifications" json:"emailNotifications"`
	ReminderTime         string `bson:"reminderTime" json:"reminderTime"` // "HH:MM"
}

type LocationPreferences struct {
	Enabled      bool      `bson:"enabled" json:"enabled"`
	HomeLocation *GeoPoint `bson:"homeLocation,omitempty" json:"homeLocation,omitempty"`
}

// User represents a registered account. Password is a bcrypt hash and is
// empty for Google-only accounts.
type User struct {
	ID                      primitive.ObjectID      `bson:"_id,omitempty" json:"id,omitempty"`
	Name                    string                  `bson:"name" json:"name"`
	Email                   string                  `bson:"email" json:"email"`
	Password                string                  `bson:"password,omitempty" json:"-"`
	GoogleID                string                  `bson:"googleId,omitempty" json:"-"`
	Theme                   string                  `bson:"theme" json:"theme"` // "light" or "dark"
	EmailReminders          bool                    `bson:"emailReminders" json:"emailReminders"`
	ProfilePicture          string                  `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	TwoFactorEnabled        bool                    `bson:"twoFactorEnabled" json:"twoFactorEnabled"`
	TwoFactorSecret         string                  `bson:"twoFactorSecret,omitempty" json:"-"`
	GoogleCalendarTokens    *GoogleCalendarTokens   `bson:"googleCalendarTokens,omitempty" json:"-"`
	NotificationPreferences NotificationPreferences `bson:"notificationPreferences" json:"notificationPreferences"`
	LocationPreferences     LocationPreferences     `bson:"locationPreferences" json:"locationPreferences"`
	CreatedAt               time.Time               `bson:"createdAt" json:"createdAt"`
}
