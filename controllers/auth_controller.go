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
	"google.golang.org/api/idtoken"
)

var googleClientID string

// InitAuthController stores the Google OAuth client id used to verify
// sign-in credentials
func InitAuthController(clientID string) {
	googleClientID = clientID
}

func profileResponse(user *models.User) gin.H {
	return gin.H{
		"id":               user.ID.Hex(),
		"name":             user.Name,
		"email":            user.Email,
		"theme":            user.Theme,
		"emailReminders":   user.EmailReminders,
		"profilePicture":   user.ProfilePicture,
		"twoFactorEnabled": user.TwoFactorEnabled,
		"createdAt":        user.CreatedAt,
	}
}

// Register creates a new local account and issues a JWT
func Register(c *gin.Context) {
	var req structs.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	users := db.MongoDatabase.Collection("users")

	count, err := users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		log.Printf("Error checking for existing user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	user := models.User{
		Name:           req.Name,
		Email:          email,
		Password:       hash,
		Theme:          "light",
		EmailReminders: true,
		CreatedAt:      time.Now(),
	}

	result, err := users.InsertOne(ctx, user)
	if err != nil {
		log.Printf("Error inserting user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	user.ID = result.InsertedID.(primitive.ObjectID)

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": profileResponse(&user)})
}

// Login verifies credentials and issues a JWT; accounts with 2FA enabled
// must supply the emailed OTP on a second call
func Login(c *gin.Context) {
	var req structs.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := db.MongoDatabase.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if user.Password == "" || !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if user.TwoFactorEnabled {
		if req.OTP == "" {
			code := utils.GenerateRandomCode(6)
			otpStore.Put(user.Email, code)
			if err := utils.SendOTPEmail(user.Email, code); err != nil {
				log.Printf("Error sending OTP email to %s: %v", user.Email, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"requires2FA": true, "message": "Verification code sent to your email"})
			return
		}
		if err := otpStore.Verify(user.Email, req.OTP); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired verification code"})
			return
		}
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": profileResponse(&user)})
}

// GoogleLogin verifies a Google ID token and links or creates the account
func GoogleLogin(c *gin.Context) {
	var req structs.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload, err := idtoken.Validate(ctx, req.Credential, googleClientID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google credential"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	googleID := payload.Subject
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google credential missing email"})
		return
	}
	email = strings.ToLower(email)

	users := db.MongoDatabase.Collection("users")

	var user models.User
	err = users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		user = models.User{
			Name:           name,
			Email:          email,
			GoogleID:       googleID,
			Theme:          "light",
			EmailReminders: true,
			ProfilePicture: picture,
			CreatedAt:      time.Now(),
		}
		result, insertErr := users.InsertOne(ctx, user)
		if insertErr != nil {
			log.Printf("Error creating Google user: %v", insertErr)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}
		user.ID = result.InsertedID.(primitive.ObjectID)
	} else if err != nil {
		log.Printf("Error looking up user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	} else if user.GoogleID == "" {
		// Link Google identity to an existing local account
		_, err = users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{"googleId": googleID}})
		if err != nil {
			log.Printf("Error linking Google account: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": profileResponse(&user)})
}

// GetMe returns the authenticated user's profile
func GetMe(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := db.MongoDatabase.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profileResponse(&user)})
}

// UpdateProfile updates name, theme, reminder preference and picture
func UpdateProfile(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Theme == "light" || req.Theme == "dark" {
		update["theme"] = req.Theme
	}
	if req.EmailReminders != nil {
		update["emailReminders"] = *req.EmailReminders
	}
	if req.ProfilePicture != "" {
		update["profilePicture"] = req.ProfilePicture
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users := db.MongoDatabase.Collection("users")
	if _, err := users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": update}); err != nil {
		log.Printf("Error updating profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	var user models.User
	if err := users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profileResponse(&user)})
}
