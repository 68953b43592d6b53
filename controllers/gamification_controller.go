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
)

func loadOrCreateScore(ctx context.Context, userID primitive.ObjectID) (*models.UserScore, error) {
	scores := db.MongoDatabase.Collection("user_scores")

	var score models.UserScore
	err := scores.FindOne(ctx, bson.M{"user": userID}).Decode(&score)
	if err == mongo.ErrNoDocuments {
		fresh := models.NewUserScore(userID)
		if _, err := scores.InsertOne(ctx, fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	}
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func saveScore(ctx context.Context, score *models.UserScore) error {
	score.LastUpdated = time.Now()
	_, err := db.MongoDatabase.Collection("user_scores").UpdateOne(ctx,
		bson.M{"user": score.UserID},
		bson.M{"$set": bson.M{
			"totalXP":              score.TotalXP,
			"currentLevel":         score.CurrentLevel,
			"longestStreak":        score.LongestStreak,
			"totalHabitsCompleted": score.TotalHabitsCompleted,
			"totalTasksCompleted":  score.TotalTasksCompleted,
			"badges":               score.Badges,
			"lastUpdated":          score.LastUpdated,
		}})
	return err
}

func badgeCatalog(ids []string) []models.BadgeInfo {
	infos := make([]models.BadgeInfo, 0, len(ids))
	for _, id := range ids {
		if info, ok := services.BadgeInfoByID(id); ok {
			infos = append(infos, info)
		}
	}
	return infos
}

// GetGamificationStats returns the user's XP, level and badges, awarding any
// newly satisfied badges first
func GetGamificationStats(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	score, err := loadOrCreateScore(ctx, userID)
	if err != nil {
		log.Printf("Error loading score: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gamification stats"})
		return
	}

	habits, err := loadUserHabits(ctx, userID)
	if err != nil {
		log.Printf("Error loading habits: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gamification stats"})
		return
	}

	// Streak badges are judged on the habits themselves, not the stored
	// score counter, which only moves on the completion path.
	longestStreak, currentStreak := services.StreakTotals(habits)

	summary := services.BadgeSummary{
		HabitCount:           len(habits),
		LongestStreak:        longestStreak,
		Level:                score.CurrentLevel,
		TotalTasksCompleted:  score.TotalTasksCompleted,
		TotalHabitsCompleted: score.TotalHabitsCompleted,
	}

	newBadges := services.EvaluateBadges(summary, score.Badges)
	for _, id := range newBadges {
		score.AddBadge(id)
		websocket.BroadcastGamificationEvent(models.GamificationEvent{
			Type:      "badge_awarded",
			UserID:    userID.Hex(),
			BadgeID:   id,
			Timestamp: time.Now(),
		})
	}
	if len(newBadges) > 0 {
		if err := saveScore(ctx, score); err != nil {
			log.Printf("Error saving awarded badges: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gamification stats"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"xp":              score.TotalXP,
		"level":           score.CurrentLevel,
		"xpForNextLevel":  score.XPForNextLevel(),
		"badges":          badgeCatalog(score.Badges),
		"newBadges":       newBadges,
		"availableBadges": services.AvailableBadges(),
		"stats": gin.H{
			"totalHabitsCompleted": score.TotalHabitsCompleted,
			"totalTasksCompleted":  score.TotalTasksCompleted,
			"longestStreak":        score.LongestStreak,
			"currentStreak":        currentStreak,
		},
	})
}

// applyManualAward grants the XP for one completion of the given type and
// advances the matching lifetime counter. Returns false for unknown types.
func applyManualAward(score *models.UserScore, awardType string) (int, bool) {
	var points int
	switch awardType {
	case "habit":
		points = models.XPPerHabitCompletion
		score.TotalHabitsCompleted++
	case "task":
		points = models.XPPerTaskCompletion
		score.TotalTasksCompleted++
	default:
		return 0, false
	}
	score.AddXP(points)
	return points, true
}

// AwardXP grants XP for a habit or task action
func AwardXP(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.AwardXPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	score, err := loadOrCreateScore(ctx, userID)
	if err != nil {
		log.Printf("Error loading score: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to award XP"})
		return
	}

	points, ok := applyManualAward(score, req.Type)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type must be habit or task"})
		return
	}

	if err := saveScore(ctx, score); err != nil {
		log.Printf("Error saving score: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to award XP"})
		return
	}

	websocket.BroadcastGamificationEvent(models.GamificationEvent{
		Type:      "xp_awarded",
		UserID:    userID.Hex(),
		Points:    points,
		TotalXP:   score.TotalXP,
		Level:     score.CurrentLevel,
		Timestamp: time.Now(),
	})

	c.JSON(http.StatusOK, gin.H{
		"xpGained":       points,
		"xp":             score.TotalXP,
		"level":          score.CurrentLevel,
		"xpForNextLevel": score.XPForNextLevel(),
	})
}
