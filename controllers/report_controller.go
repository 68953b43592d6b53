package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"momentum/middlewares"
	"momentum/models"
	"momentum/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func loadReportInputs(ctx context.Context, userID primitive.ObjectID) ([]models.Habit, []models.Task, error) {
	habits, err := loadUserHabits(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := loadUserTasks(ctx, userID, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	return habits, tasks, nil
}

// GetWeeklyReport builds the 7-day productivity report
func GetWeeklyReport(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	habits, tasks, err := loadReportInputs(ctx, userID)
	if err != nil {
		log.Printf("Error loading report inputs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": services.BuildWeeklyReport(habits, tasks, time.Now())})
}

// GetMonthlyReport builds the one-month productivity report
func GetMonthlyReport(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	habits, tasks, err := loadReportInputs(ctx, userID)
	if err != nil {
		log.Printf("Error loading report inputs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": services.BuildMonthlyReport(habits, tasks, time.Now())})
}
