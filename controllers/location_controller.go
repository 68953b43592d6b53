package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"momentum/db"
	"momentum/middlewares"
	"momentum/models"
	"momentum/services"
	"momentum/structs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetNearby returns habits and tasks whose geofence contains the given
// coordinates, closest first
func GetNearby(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lat, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("longitude"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude query parameters are required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	habits, err := loadUserHabits(ctx, userID)
	if err != nil {
		log.Printf("Error loading habits: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find nearby items"})
		return
	}
	tasks, err := loadUserTasks(ctx, userID, bson.M{"status": models.StatusPending}, nil)
	if err != nil {
		log.Printf("Error loading tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find nearby items"})
		return
	}

	nearbyHabits := services.NearbyHabits(habits, lat, lon)
	nearbyTasks := services.NearbyTasks(tasks, lat, lon)

	c.JSON(http.StatusOK, gin.H{
		"habits": nearbyHabits,
		"tasks":  nearbyTasks,
	})
}

// SetHomeLocation stores the user's home coordinates and enables
// location features
func SetHomeLocation(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.HomeLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"locationPreferences.enabled": true,
		"locationPreferences.homeLocation": models.GeoPoint{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
	}}
	_, err := db.MongoDatabase.Collection("users").UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		log.Printf("Error saving home location: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save home location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Home location saved"})
}
