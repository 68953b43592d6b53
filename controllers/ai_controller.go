package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"momentum/middlewares"
	"momentum/services"
	"momentum/structs"

	"github.com/gin-gonic/gin"
)

// GetSuggestions asks the model for habit/task suggestions based on what
// the user already tracks. Falls back to a static list when the model is
// unavailable.
func GetSuggestions(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	habits, err := loadUserHabits(ctx, userID)
	if err != nil {
		log.Printf("Error loading habits for suggestions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate suggestions"})
		return
	}
	tasks, err := loadUserTasks(ctx, userID, nil, nil)
	if err != nil {
		log.Printf("Error loading tasks for suggestions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate suggestions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": services.GenerateSuggestions(ctx, habits, tasks)})
}

// Chat answers a productivity question grounded in the user's habit stats
func Chat(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	habits, err := loadUserHabits(ctx, userID)
	if err != nil {
		log.Printf("Error loading habits for chat: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate reply"})
		return
	}

	reply, err := services.CoachReply(ctx, req.Message, services.ComputeHabitStats(habits))
	if err != nil {
		log.Printf("Error generating coach reply: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI coach is unavailable right now"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
