package controllers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"momentum/db"
	"momentum/middlewares"
	"momentum/models"
	"momentum/structs"
	"momentum/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func collaboratorRole(role string) string {
	if role == models.RoleCollaborator {
		return models.RoleCollaborator
	}
	return models.RoleViewer
}

func findUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := db.MongoDatabase.Collection("users").FindOne(ctx,
		bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ShareHabit shares one of the caller's habits with another user by email
func ShareHabit(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	habitID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid habit id"})
		return
	}

	var req structs.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var habit models.Habit
	if err := db.MongoDatabase.Collection("habits").FindOne(ctx, bson.M{"_id": habitID, "user": userID}).Decode(&habit); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
		return
	}

	invitee, err := findUserByEmail(ctx, req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No user with that email"})
		return
	}
	if invitee.ID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot share with yourself"})
		return
	}

	shares := db.MongoDatabase.Collection("shared_habits")

	var share models.SharedHabit
	err = shares.FindOne(ctx, bson.M{"habit": habitID}).Decode(&share)
	if err == mongo.ErrNoDocuments {
		share = models.SharedHabit{
			HabitID:       habitID,
			OwnerID:       userID,
			Collaborators: []models.Collaborator{},
			CreatedAt:     time.Now(),
		}
		result, insertErr := shares.InsertOne(ctx, share)
		if insertErr != nil {
			log.Printf("Error creating habit share: %v", insertErr)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share habit"})
			return
		}
		share.ID = result.InsertedID.(primitive.ObjectID)
	} else if err != nil {
		log.Printf("Error loading habit share: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share habit"})
		return
	}

	for _, collab := range share.Collaborators {
		if collab.UserID == invitee.ID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already shared with that user"})
			return
		}
	}

	collaborator := models.Collaborator{
		UserID:    invitee.ID,
		Role:      collaboratorRole(req.Role),
		InvitedAt: time.Now(),
	}
	_, err = shares.UpdateOne(ctx, bson.M{"_id": share.ID},
		bson.M{"$push": bson.M{"collaborators": collaborator}})
	if err != nil {
		log.Printf("Error adding collaborator: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share habit"})
		return
	}

	inviter, err := loadUser(ctx, userID)
	if err == nil {
		if err := utils.SendCollaborationEmail(invitee.Email, inviter.Name, habit.Name, "habit"); err != nil {
			log.Printf("Error sending collaboration email: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Habit shared", "collaborator": collaborator})
}

// ShareTask shares one of the caller's tasks with another user by email
func ShareTask(c *gin.Context) {
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

	var req structs.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var task models.Task
	if err := db.MongoDatabase.Collection("tasks").FindOne(ctx, bson.M{"_id": taskID, "userId": userID}).Decode(&task); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	invitee, err := findUserByEmail(ctx, req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No user with that email"})
		return
	}
	if invitee.ID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot share with yourself"})
		return
	}

	shares := db.MongoDatabase.Collection("shared_tasks")

	var share models.SharedTask
	err = shares.FindOne(ctx, bson.M{"task": taskID}).Decode(&share)
	if err == mongo.ErrNoDocuments {
		share = models.SharedTask{
			TaskID:        taskID,
			OwnerID:       userID,
			Collaborators: []models.Collaborator{},
			CreatedAt:     time.Now(),
		}
		result, insertErr := shares.InsertOne(ctx, share)
		if insertErr != nil {
			log.Printf("Error creating task share: %v", insertErr)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share task"})
			return
		}
		share.ID = result.InsertedID.(primitive.ObjectID)
	} else if err != nil {
		log.Printf("Error loading task share: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share task"})
		return
	}

	for _, collab := range share.Collaborators {
		if collab.UserID == invitee.ID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already shared with that user"})
			return
		}
	}

	collaborator := models.Collaborator{
		UserID:    invitee.ID,
		Role:      collaboratorRole(req.Role),
		InvitedAt: time.Now(),
	}
	_, err = shares.UpdateOne(ctx, bson.M{"_id": share.ID},
		bson.M{"$push": bson.M{"collaborators": collaborator}})
	if err != nil {
		log.Printf("Error adding collaborator: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share task"})
		return
	}

	inviter, err := loadUser(ctx, userID)
	if err == nil {
		if err := utils.SendCollaborationEmail(invitee.Email, inviter.Name, task.Title, "task"); err != nil {
			log.Printf("Error sending collaboration email: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task shared", "collaborator": collaborator})
}

// GetSharedItems lists shares where the caller is owner or collaborator
func GetSharedItems(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"owner": userID},
		{"collaborators.user": userID},
	}}

	habitCursor, err := db.MongoDatabase.Collection("shared_habits").Find(ctx, filter)
	if err != nil {
		log.Printf("Error fetching shared habits: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shared items"})
		return
	}
	var sharedHabits []models.SharedHabit
	if err := habitCursor.All(ctx, &sharedHabits); err != nil {
		log.Printf("Error decoding shared habits: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shared items"})
		return
	}

	taskCursor, err := db.MongoDatabase.Collection("shared_tasks").Find(ctx, filter)
	if err != nil {
		log.Printf("Error fetching shared tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shared items"})
		return
	}
	var sharedTasks []models.SharedTask
	if err := taskCursor.All(ctx, &sharedTasks); err != nil {
		log.Printf("Error decoding shared tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shared items"})
		return
	}

	if sharedHabits == nil {
		sharedHabits = []models.SharedHabit{}
	}
	if sharedTasks == nil {
		sharedTasks = []models.SharedTask{}
	}

	c.JSON(http.StatusOK, gin.H{"sharedHabits": sharedHabits, "sharedTasks": sharedTasks})
}

// RemoveCollaborator removes a user from a share. Owner only.
func RemoveCollaborator(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	itemType := c.Param("type")
	var collection string
	switch itemType {
	case "habit":
		collection = "shared_habits"
	case "task":
		collection = "shared_tasks"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type must be habit or task"})
		return
	}

	shareID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid share id"})
		return
	}
	collaboratorID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collaborator id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.MongoDatabase.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": shareID, "owner": userID},
		bson.M{"$pull": bson.M{"collaborators": bson.M{"user": collaboratorID}}})
	if err != nil {
		log.Printf("Error removing collaborator: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove collaborator"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Share not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Collaborator removed"})
}
