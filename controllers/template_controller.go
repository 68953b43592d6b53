package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"momentum/db"
	"momentum/middlewares"
	"momentum/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetTemplates lists all habit templates
func GetTemplates(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.MongoDatabase.Collection("habit_templates").Find(ctx, bson.M{})
	if err != nil {
		log.Printf("Error fetching templates: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
		return
	}

	var templates []models.HabitTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		log.Printf("Error decoding templates: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
		return
	}
	if templates == nil {
		templates = []models.HabitTemplate{}
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// ApplyTemplate instantiates every habit preset in a template for the user
func ApplyTemplate(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	templateID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var template models.HabitTemplate
	err = db.MongoDatabase.Collection("habit_templates").FindOne(ctx, bson.M{"_id": templateID}).Decode(&template)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(template.Habits))
	created := make([]models.Habit, 0, len(template.Habits))
	for _, preset := range template.Habits {
		frequency := preset.Frequency
		if frequency != models.FrequencyWeekly {
			frequency = models.FrequencyDaily
		}
		goal := preset.Goal
		if goal <= 0 {
			goal = 1
		}
		habit := models.Habit{
			UserID:      userID,
			Name:        preset.Name,
			Description: preset.Description,
			Frequency:   frequency,
			Goal:        goal,
			Color:       preset.Color,
			Completions: []models.CompletionEntry{},
			CreatedAt:   now,
		}
		docs = append(docs, habit)
		created = append(created, habit)
	}

	if len(docs) == 0 {
		c.JSON(http.StatusOK, gin.H{"habits": []models.Habit{}})
		return
	}

	result, err := db.MongoDatabase.Collection("habits").InsertMany(ctx, docs)
	if err != nil {
		log.Printf("Error applying template: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply template"})
		return
	}
	for i, id := range result.InsertedIDs {
		if i < len(created) {
			created[i].ID = id.(primitive.ObjectID)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"habits": created, "template": template.Name})
}
