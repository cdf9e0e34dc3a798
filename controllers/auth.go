package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Khatixer/farmguard-ai/config"
	"github.com/Khatixer/farmguard-ai/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// SignupRequest is the account plus the farm profile submitted alongside
// it. The profile is cached and reconciled at first login, covering
// accounts that confirm their email before ever holding a session.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	Location         string  `json:"location"`
	FarmSize         float64 `json:"farm_size"`
	MainCrop         string  `json:"main_crop"`
	ExperienceYears  int     `json:"experience_years"`
	FarmType         string  `json:"farm_type"`
	PreferredContact string  `json:"preferred_contact"`
	Bio              string  `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a new farmer account.
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	name := req.Name
	if name == "" {
		name, _, _ = strings.Cut(req.Email, "@")
	}
	user := models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Name:     name,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}

	// Stash the submitted profile for the first login to pick up.
	pending := models.PendingProfile{
		Name:             req.Name,
		Phone:            req.Phone,
		Location:         req.Location,
		FarmSize:         req.FarmSize,
		MainCrop:         req.MainCrop,
		ExperienceYears:  req.ExperienceYears,
		FarmType:         req.FarmType,
		PreferredContact: req.PreferredContact,
		Bio:              req.Bio,
	}
	if err := PendingProfiles.Cache(user.ID, pending); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user_id": user.ID})
}

// Login authenticates a user, folds any pending signup profile into their
// account, and returns a JWT token.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	pending, found, err := PendingProfiles.Consume(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	if found {
		mergePendingProfile(&user, *pending)
		if err := config.DB.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
			return
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour * 24).Unix(), // Expires in 24 hours
	})
	tokenString, err := token.SignedString(config.JWTSecret())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString, "user": user})
}

// mergePendingProfile fills the account from the cached signup profile,
// keeping any field the account already has a value for.
func mergePendingProfile(user *models.User, pending models.PendingProfile) {
	if pending.Name != "" {
		user.Name = pending.Name
	}
	if pending.Phone != "" {
		user.Phone = pending.Phone
	}
	if pending.Location != "" {
		user.Location = pending.Location
	}
	if pending.FarmSize != 0 {
		user.FarmSize = pending.FarmSize
	}
	if pending.MainCrop != "" {
		user.MainCrop = pending.MainCrop
	}
	if pending.ExperienceYears != 0 {
		user.ExperienceYears = pending.ExperienceYears
	}
	if pending.FarmType != "" {
		user.FarmType = pending.FarmType
	}
	if pending.PreferredContact != "" {
		user.PreferredContact = pending.PreferredContact
	}
	if pending.Bio != "" {
		user.Bio = pending.Bio
	}
}

// Logout clears the server-side view state; the client discards its token.
func Logout(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := History.ClearSelection(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session state"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfile returns the authenticated user's profile.
func GetProfile(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile merges the submitted fields into the profile and persists
// it wholesale. Called once on the edit-mode save, not per keystroke.
func UpdateProfile(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User not found"})
		return
	}

	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	update.Apply(&user)
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}
