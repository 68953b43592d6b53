package controllers

import (
	"context"
	"net/http"
	"time"

	"momentum/db"
	"momentum/middlewares"
	"momentum/services"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports process and database liveness
func HealthCheck(c *gin.Context) {
	status := "ok"
	dbStatus := "connected"
	code := http.StatusOK

	if !db.Connected() {
		status = "degraded"
		dbStatus = "disconnected"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now(),
	})
}

// GetCombinedStats returns habit and task summaries in one response
func GetCombinedStats(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	habits, err := loadUserHabits(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	tasks, err := loadUserTasks(ctx, userID, nil, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	habitStats := services.ComputeHabitStats(habits)
	taskStats := services.ComputeTaskStats(tasks)

	c.JSON(http.StatusOK, gin.H{
		"habits": habitStats,
		"tasks":  taskStats,
		"overall": gin.H{
			"totalItems":     habitStats.TotalHabits + taskStats.TotalTasks,
			"completedTasks": taskStats.CompletedTasks,
			"longestStreak":  habitStats.LongestStreak,
		},
	})
}
