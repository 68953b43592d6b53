package controllers

import (
	"context"
	"fmt"
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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportData returns the user's habits, tasks and moods as a downloadable
// JSON document
func ExportData(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := loadUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	habits, err := loadUserHabits(ctx, userID)
	if err != nil {
		log.Printf("Error exporting habits: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}
	tasks, err := loadUserTasks(ctx, userID, nil, nil)
	if err != nil {
		log.Printf("Error exporting tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	moodCursor, err := db.MongoDatabase.Collection("moods").Find(ctx, bson.M{"user": userID})
	if err != nil {
		log.Printf("Error exporting moods: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}
	var moods []models.Mood
	if err := moodCursor.All(ctx, &moods); err != nil {
		log.Printf("Error decoding moods: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	if habits == nil {
		habits = []models.Habit{}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	if moods == nil {
		moods = []models.Mood{}
	}

	filename := fmt.Sprintf("momentum-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, gin.H{
		"exportedAt": time.Now(),
		"user": gin.H{
			"name":  user.Name,
			"email": user.Email,
			"theme": user.Theme,
		},
		"habits": habits,
		"tasks":  tasks,
		"moods":  moods,
	})
}

// ImportData recreates habits, tasks and moods from an exported document
// under the caller's ownership. Ids are regenerated.
func ImportData(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	imported := gin.H{"habits": 0, "tasks": 0, "moods": 0}

	if len(req.Habits) > 0 {
		docs := make([]interface{}, 0, len(req.Habits))
		for _, habit := range req.Habits {
			habit.ID = primitive.NilObjectID
			habit.UserID = userID
			if habit.Completions == nil {
				habit.Completions = []models.CompletionEntry{}
			}
			services.CalculateStreak(&habit, now)
			if habit.CreatedAt.IsZero() {
				habit.CreatedAt = now
			}
			docs = append(docs, habit)
		}
		result, err := db.MongoDatabase.Collection("habits").InsertMany(ctx, docs)
		if err != nil {
			log.Printf("Error importing habits: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import data"})
			return
		}
		imported["habits"] = len(result.InsertedIDs)
	}

	if len(req.Tasks) > 0 {
		docs := make([]interface{}, 0, len(req.Tasks))
		for _, task := range req.Tasks {
			task.ID = primitive.NilObjectID
			task.UserID = userID
			if task.Status != models.StatusCompleted {
				task.Status = models.StatusPending
				task.CompletedAt = nil
			}
			if task.CreatedAt.IsZero() {
				task.CreatedAt = now
			}
			docs = append(docs, task)
		}
		result, err := db.MongoDatabase.Collection("tasks").InsertMany(ctx, docs)
		if err != nil {
			log.Printf("Error importing tasks: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import data"})
			return
		}
		imported["tasks"] = len(result.InsertedIDs)
	}

	if len(req.Moods) > 0 {
		docs := make([]interface{}, 0, len(req.Moods))
		for _, mood := range req.Moods {
			if !models.ValidMood(mood.Mood) {
				continue
			}
			mood.ID = primitive.NilObjectID
			mood.UserID = userID
			mood.Date = services.NormalizeDay(mood.Date)
			if mood.CreatedAt.IsZero() {
				mood.CreatedAt = now
			}
			docs = append(docs, mood)
		}
		if len(docs) > 0 {
			result, err := db.MongoDatabase.Collection("moods").InsertMany(ctx, docs)
			if err != nil {
				log.Printf("Error importing moods: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import data"})
				return
			}
			imported["moods"] = len(result.InsertedIDs)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Import complete", "imported": imported})
}
