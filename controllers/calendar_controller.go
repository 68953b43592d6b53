package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"momentum/config"
	"momentum/db"
	"momentum/middlewares"
	"momentum/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var (
	calendarOAuth *oauth2.Config
	frontendURL   string
)

// InitCalendarController builds the OAuth config used for calendar sync
func InitCalendarController(cfg *config.Config) {
	calendarOAuth = &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURI,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}
	frontendURL = cfg.Server.FrontendURL
}

// GetCalendarAuthURL returns the Google consent URL for calendar access
func GetCalendarAuthURL(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	url := calendarOAuth.AuthCodeURL(userID.Hex(),
		oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// CalendarCallback exchanges the consent code and stores the tokens on the
// user identified by the state parameter
func CalendarCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing code or state"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(state)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid state"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	token, err := calendarOAuth.Exchange(ctx, code)
	if err != nil {
		log.Printf("Error exchanging calendar code: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to connect Google Calendar"})
		return
	}

	tokens := models.GoogleCalendarTokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		tokens.ExpiryDate = &expiry
	}

	_, err = db.MongoDatabase.Collection("users").UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"googleCalendarTokens": tokens}})
	if err != nil {
		log.Printf("Error storing calendar tokens: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to connect Google Calendar"})
		return
	}

	c.Redirect(http.StatusFound, frontendURL+"/settings?calendar=connected")
}

func storedToken(tokens *models.GoogleCalendarTokens) *oauth2.Token {
	token := &oauth2.Token{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
	if tokens.ExpiryDate != nil {
		token.Expiry = *tokens.ExpiryDate
	}
	return token
}

// SyncCalendar inserts one calendar event per pending task with a due date.
// Individual insert failures are logged and skipped.
func SyncCalendar(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := loadUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.GoogleCalendarTokens == nil || user.GoogleCalendarTokens.AccessToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Google Calendar is not connected"})
		return
	}

	tasks, err := loadUserTasks(ctx, userID, bson.M{
		"status":  models.StatusPending,
		"dueDate": bson.M{"$ne": nil},
	}, nil)
	if err != nil {
		log.Printf("Error loading tasks for calendar sync: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync calendar"})
		return
	}

	source := calendarOAuth.TokenSource(ctx, storedToken(user.GoogleCalendarTokens))
	service, err := calendar.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		log.Printf("Error creating calendar service: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to sync calendar"})
		return
	}

	synced := 0
	for _, task := range tasks {
		if task.DueDate == nil {
			continue
		}
		event := &calendar.Event{
			Summary:     task.Title,
			Description: task.Description,
			Start: &calendar.EventDateTime{
				DateTime: task.DueDate.Format(time.RFC3339),
			},
			End: &calendar.EventDateTime{
				DateTime: task.DueDate.Add(30 * time.Minute).Format(time.RFC3339),
			},
		}
		if _, err := service.Events.Insert("primary", event).Context(ctx).Do(); err != nil {
			log.Printf("Error syncing task %s to calendar: %v", task.ID.Hex(), err)
			continue
		}
		synced++
	}

	c.JSON(http.StatusOK, gin.H{"message": "Calendar sync complete", "synced": synced, "total": len(tasks)})
}

// DisconnectCalendar clears the stored Google Calendar tokens
func DisconnectCalendar(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.MongoDatabase.Collection("users").UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$unset": bson.M{"googleCalendarTokens": ""}})
	if err != nil {
		log.Printf("Error disconnecting calendar: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disconnect calendar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Google Calendar disconnected"})
}
