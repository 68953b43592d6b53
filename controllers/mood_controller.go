package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"momentum/db"
	"momentum/middlewares"
	"momentum/models"
	"momentum/services"
	"momentum/structs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogMood upserts today's mood entry, snapshotting how many habits and
// tasks were completed today
func LogMood(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.MoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if !models.ValidMood(req.Mood) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown mood"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	today := services.NormalizeDay(now)

	habits, err := loadUserHabits(ctx, userID)
	if err != nil {
		log.Printf("Error loading habits for mood snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log mood"})
		return
	}
	tasks, err := loadUserTasks(ctx, userID, nil, nil)
	if err != nil {
		log.Printf("Error loading tasks for mood snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log mood"})
		return
	}

	entry := models.Mood{
		UserID:          userID,
		Date:            today,
		Mood:            req.Mood,
		EnergyLevel:     req.EnergyLevel,
		Notes:           req.Notes,
		HabitsCompleted: services.CountHabitsCompletedOn(habits, today),
		TasksCompleted:  services.CountTasksCompletedOn(tasks, today),
		CreatedAt:       now,
	}

	opts := options.Replace().SetUpsert(true)
	_, err = db.MongoDatabase.Collection("moods").ReplaceOne(ctx,
		bson.M{"user": userID, "date": today}, entry, opts)
	if err != nil {
		log.Printf("Error upserting mood: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log mood"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mood": entry})
}

// GetMoodHistory returns recent entries, newest first, optionally bounded
// by startDate/endDate (YYYY-MM-DD)
func GetMoodHistory(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	filter := bson.M{"user": userID}
	dateRange := bson.M{}
	if raw := c.Query("startDate"); raw != "" {
		if start, err := time.Parse("2006-01-02", raw); err == nil {
			dateRange["$gte"] = services.NormalizeDay(start)
		}
	}
	if raw := c.Query("endDate"); raw != "" {
		if end, err := time.Parse("2006-01-02", raw); err == nil {
			dateRange["$lte"] = services.NormalizeDay(end)
		}
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(30)
	cursor, err := db.MongoDatabase.Collection("moods").Find(ctx, filter, opts)
	if err != nil {
		log.Printf("Error fetching mood history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mood history"})
		return
	}

	var moods []models.Mood
	if err := cursor.All(ctx, &moods); err != nil {
		log.Printf("Error decoding mood history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mood history"})
		return
	}
	if moods == nil {
		moods = []models.Mood{}
	}

	c.JSON(http.StatusOK, gin.H{"moods": moods})
}

// GetMoodInsights reduces the user's full mood history into aggregates
func GetMoodInsights(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.MongoDatabase.Collection("moods").Find(ctx, bson.M{"user": userID})
	if err != nil {
		log.Printf("Error fetching moods: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute insights"})
		return
	}

	var moods []models.Mood
	if err := cursor.All(ctx, &moods); err != nil {
		log.Printf("Error decoding moods: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute insights"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": services.ComputeMoodInsights(moods)})
}
