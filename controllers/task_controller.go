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
	"momentum/websocket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var taskPriorityOrder = map[string]int{
	models.PriorityHigh:   3,
	models.PriorityMedium: 2,
	models.PriorityLow:    1,
}

func taskSortSpec(sortBy string) bson.D {
	switch sortBy {
	case "dueDate":
		return bson.D{{Key: "dueDate", Value: 1}}
	case "priority":
		// Priority is stored as a string; sorting happens in memory below
		return nil
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

// GetTasks lists the user's tasks with optional status/priority/category
// filters and sorting
func GetTasks(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if priority := c.Query("priority"); priority != "" {
		filter["priority"] = priority
	}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	sortBy := c.DefaultQuery("sortBy", "createdAt")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var opts *options.FindOptions
	if spec := taskSortSpec(sortBy); spec != nil {
		opts = options.Find().SetSort(spec)
	}

	tasks, err := loadUserTasks(ctx, userID, filter, opts)
	if err != nil {
		log.Printf("Error fetching tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	if sortBy == "priority" {
		sortTasksByPriority(tasks)
	}

	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func sortTasksByPriority(tasks []models.Task) {
	// Highest priority first, ties keep insertion order
	for i := 1; i < len(tasks); i++ {
		for j := i; j > 0 && taskPriorityOrder[tasks[j].Priority] > taskPriorityOrder[tasks[j-1].Priority]; j-- {
			tasks[j], tasks[j-1] = tasks[j-1], tasks[j]
		}
	}
}

// CreateTask creates a task for the authenticated user
func CreateTask(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	priority := req.Priority
	if _, valid := taskPriorityOrder[priority]; !valid {
		priority = models.PriorityMedium
	}
	category := req.Category
	if category == "" {
		category = "General"
	}

	task := models.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    priority,
		Status:      models.StatusPending,
		Category:    category,
		Location:    req.Location,
		CreatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.MongoDatabase.Collection("tasks").InsertOne(ctx, task)
	if err != nil {
		log.Printf("Error creating task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}
	task.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// UpdateTask applies partial updates. Completing a pending task sets
// completedAt and awards XP; reverting clears completedAt without revoking XP.
func UpdateTask(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	var req structs.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tasksColl := db.MongoDatabase.Collection("tasks")

	var task models.Task
	if err := tasksColl.FindOne(ctx, bson.M{"_id": taskID, "userId": userID}).Decode(&task); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	update := bson.M{}
	unset := bson.M{}
	if req.Title != nil {
		update["title"] = *req.Title
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.DueDate != nil {
		update["dueDate"] = *req.DueDate
	}
	if req.Priority != nil {
		if _, valid := taskPriorityOrder[*req.Priority]; !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Priority must be Low, Medium or High"})
			return
		}
		update["priority"] = *req.Priority
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.Location != nil {
		update["location"] = *req.Location
	}

	completedNow := false
	if req.Status != nil {
		switch *req.Status {
		case models.StatusCompleted:
			if task.Status != models.StatusCompleted {
				completedNow = true
				now := time.Now()
				update["completedAt"] = now
			}
			update["status"] = models.StatusCompleted
		case models.StatusPending:
			update["status"] = models.StatusPending
			unset["completedAt"] = ""
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be Pending or Completed"})
			return
		}
	}

	if len(update) == 0 && len(unset) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	change := bson.M{}
	if len(update) > 0 {
		change["$set"] = update
	}
	if len(unset) > 0 {
		change["$unset"] = unset
	}
	if _, err := tasksColl.UpdateOne(ctx, bson.M{"_id": taskID}, change); err != nil {
		log.Printf("Error updating task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	response := gin.H{}

	if completedNow {
		score, err := loadOrCreateScore(ctx, userID)
		if err != nil {
			log.Printf("Error loading score: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
			return
		}
		score.AddXP(models.XPPerTaskCompletion)
		score.TotalTasksCompleted++
		if err := saveScore(ctx, score); err != nil {
			log.Printf("Error saving score: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
			return
		}
		websocket.BroadcastGamificationEvent(models.GamificationEvent{
			Type:      "xp_awarded",
			UserID:    userID.Hex(),
			Points:    models.XPPerTaskCompletion,
			TotalXP:   score.TotalXP,
			Level:     score.CurrentLevel,
			Timestamp: time.Now(),
		})
		response["xpGained"] = models.XPPerTaskCompletion
		response["totalXP"] = score.TotalXP
		response["level"] = score.CurrentLevel
	}

	if err := tasksColl.FindOne(ctx, bson.M{"_id": taskID}).Decode(&task); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	response["task"] = task

	c.JSON(http.StatusOK, response)
}

// DeleteTask removes a task the user owns
func DeleteTask(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.MongoDatabase.Collection("tasks").DeleteOne(ctx, bson.M{"_id": taskID, "userId": userID})
	if err != nil {
		log.Printf("Error deleting task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// GetTaskStats summarizes the user's tasks
func GetTaskStats(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tasks, err := loadUserTasks(ctx, userID, nil, nil)
	if err != nil {
		log.Printf("Error fetching tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": services.ComputeTaskStats(tasks)})
}
