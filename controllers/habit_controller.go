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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func persistStreaks(ctx context.Context, habit *models.Habit) error {
	_, err := db.MongoDatabase.Collection("habits").UpdateOne(ctx,
		bson.M{"_id": habit.ID},
		bson.M{"$set": bson.M{
			"completions":   habit.Completions,
			"currentStreak": habit.CurrentStreak,
			"longestStreak": habit.LongestStreak,
		}})
	return err
}

// GetHabits lists the user's habits newest first. Streaks are recomputed on
// read so counters stay fresh without a background job, and persisted when
// they changed.
func GetHabits(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.MongoDatabase.Collection("habits").Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		log.Printf("Error fetching habits: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch habits"})
		return
	}

	var habits []models.Habit
	if err := cursor.All(ctx, &habits); err != nil {
		log.Printf("Error decoding habits: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch habits"})
		return
	}

	now := time.Now()
	for i := range habits {
		prevCurrent, prevLongest := habits[i].CurrentStreak, habits[i].LongestStreak
		services.CalculateStreak(&habits[i], now)
		if habits[i].CurrentStreak != prevCurrent || habits[i].LongestStreak != prevLongest {
			if err := persistStreaks(ctx, &habits[i]); err != nil {
				log.Printf("Error persisting streaks for habit %s: %v", habits[i].ID.Hex(), err)
			}
		}
	}

	if habits == nil {
		habits = []models.Habit{}
	}
	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

// CreateHabit creates a habit for the authenticated user
func CreateHabit(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	frequency := req.Frequency
	if frequency != models.FrequencyWeekly {
		frequency = models.FrequencyDaily
	}
	goal := req.Goal
	if goal <= 0 {
		goal = 1
	}

	habit := models.Habit{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Frequency:   frequency,
		Goal:        goal,
		Color:       req.Color,
		Completions: []models.CompletionEntry{},
		Location:    req.Location,
		CreatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.MongoDatabase.Collection("habits").InsertOne(ctx, habit)
	if err != nil {
		log.Printf("Error creating habit: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create habit"})
		return
	}
	habit.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"habit": habit})
}

// DeleteHabit removes a habit the user owns
func DeleteHabit(c *gin.Context) {
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.MongoDatabase.Collection("habits").DeleteOne(ctx, bson.M{"_id": habitID, "user": userID})
	if err != nil {
		log.Printf("Error deleting habit: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete habit"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Habit deleted"})
}

func parseCompletionDate(raw string, now time.Time) (time.Time, bool) {
	if raw == "" {
		return services.NormalizeDay(now), true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return services.NormalizeDay(parsed), true
}

// CompleteHabit marks a day as done, refreshes streaks and awards XP
func CompleteHabit(c *gin.Context) {
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

	// Body is optional; an empty body means "today"
	var req structs.CompleteHabitRequest
	_ = c.ShouldBindJSON(&req)

	now := time.Now()
	date, ok := parseCompletionDate(req.Date, now)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	habits := db.MongoDatabase.Collection("habits")

	var habit models.Habit
	if err := habits.FindOne(ctx, bson.M{"_id": habitID, "user": userID}).Decode(&habit); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
		return
	}

	services.MarkCompleted(&habit, date, now)
	if err := persistStreaks(ctx, &habit); err != nil {
		log.Printf("Error persisting completion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete habit"})
		return
	}

	score, err := loadOrCreateScore(ctx, userID)
	if err != nil {
		log.Printf("Error loading score: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete habit"})
		return
	}
	score.AddXP(models.XPPerHabitCompletion)
	score.TotalHabitsCompleted++
	if habit.LongestStreak > score.LongestStreak {
		score.LongestStreak = habit.LongestStreak
	}
	if err := saveScore(ctx, score); err != nil {
		log.Printf("Error saving score: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete habit"})
		return
	}

	websocket.BroadcastGamificationEvent(models.GamificationEvent{
		Type:      "xp_awarded",
		UserID:    userID.Hex(),
		Points:    models.XPPerHabitCompletion,
		TotalXP:   score.TotalXP,
		Level:     score.CurrentLevel,
		Timestamp: now,
	})

	c.JSON(http.StatusOK, gin.H{
		"habit":    habit,
		"xpGained": models.XPPerHabitCompletion,
		"totalXP":  score.TotalXP,
		"level":    score.CurrentLevel,
	})
}

// UncompleteHabit removes a day's completion entry. XP already awarded for
// that day is kept.
func UncompleteHabit(c *gin.Context) {
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

	// Body is optional; an empty body means "today"
	var req structs.CompleteHabitRequest
	_ = c.ShouldBindJSON(&req)

	now := time.Now()
	date, ok := parseCompletionDate(req.Date, now)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	habits := db.MongoDatabase.Collection("habits")

	var habit models.Habit
	if err := habits.FindOne(ctx, bson.M{"_id": habitID, "user": userID}).Decode(&habit); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
		return
	}

	removed := services.RemoveCompletion(&habit, date, now)
	if removed {
		if err := persistStreaks(ctx, &habit); err != nil {
			log.Printf("Error persisting uncompletion: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update habit"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"habit": habit, "removed": removed})
}

// GetHabitStats summarizes the user's habits
func GetHabitStats(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	habits, err := loadUserHabits(ctx, userID)
	if err != nil {
		log.Printf("Error fetching habits: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch habit stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": services.ComputeHabitStats(habits)})
}

func loadUserHabits(ctx context.Context, userID primitive.ObjectID) ([]models.Habit, error) {
	cursor, err := db.MongoDatabase.Collection("habits").Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, err
	}
	var habits []models.Habit
	if err := cursor.All(ctx, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func loadUserTasks(ctx context.Context, userID primitive.ObjectID, filter bson.M, opts *options.FindOptions) ([]models.Task, error) {
	if filter == nil {
		filter = bson.M{}
	}
	filter["userId"] = userID
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = db.MongoDatabase.Collection("tasks").Find(ctx, filter, opts)
	} else {
		cursor, err = db.MongoDatabase.Collection("tasks").Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
