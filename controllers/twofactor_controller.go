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
	"momentum/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var otpStore *services.OTPStore

// InitOTPStore injects the one-time-password store used by login and the
// two-factor endpoints
func InitOTPStore(store *services.OTPStore) {
	otpStore = store
}

func loadUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := db.MongoDatabase.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GenerateOTP emails a fresh verification code to the authenticated user
func GenerateOTP(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := loadUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	code := utils.GenerateRandomCode(6)
	otpStore.Put(user.Email, code)

	if err := utils.SendOTPEmail(user.Email, code); err != nil {
		log.Printf("Error sending OTP email to %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent to your email"})
}

// Enable2FA turns on two-factor auth after the emailed code is verified
func Enable2FA(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := loadUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := otpStore.Verify(user.Email, req.OTP); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired verification code"})
		return
	}

	_, err = db.MongoDatabase.Collection("users").UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"twoFactorEnabled": true}})
	if err != nil {
		log.Printf("Error enabling two-factor auth: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enable two-factor authentication"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Two-factor authentication enabled", "twoFactorEnabled": true})
}

// Disable2FA turns off two-factor auth for the authenticated user
func Disable2FA(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := loadUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	otpStore.Delete(user.Email)

	_, err = db.MongoDatabase.Collection("users").UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"twoFactorEnabled": false}})
	if err != nil {
		log.Printf("Error disabling two-factor auth: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disable two-factor authentication"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Two-factor authentication disabled", "twoFactorEnabled": false})
}

// VerifyOTP checks a code without consuming any other state change
func VerifyOTP(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := loadUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := otpStore.Verify(user.Email, req.OTP); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired verification code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Code verified", "valid": true})
}
