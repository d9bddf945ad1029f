// auth.go - Handles user registration and login

package handlers

import (
	"net/http"

	"go-job-portal/config"
	"go-job-portal/database"
	"go-job-portal/logger"
	"go-job-portal/models"
	"go-job-portal/token"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct { // Struct for registration input
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Register creates a new job seeker or recruiter account. The unique
// index on email decides the duplicate case, not a pre-check.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}

	if !models.ValidRole(input.Role) {
		fail(c, http.StatusBadRequest, "Invalid role. Must be job_seeker or recruiter")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Server error during registration")
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Role:     input.Role,
	}
	if err := database.CreateUser(&user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			fail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		logger.Logger.Errorw("registration failed", "error", err)
		fail(c, http.StatusInternalServerError, "Server error during registration")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Login authenticates by (email, role) and password, returning a signed
// token good for seven days. A role mismatch fails exactly like a wrong
// password.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Email, password, and role are required")
		return
	}

	user, err := database.UserByEmailAndRole(input.Email, input.Role)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			fail(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logger.Logger.Errorw("login lookup failed", "error", err)
		fail(c, http.StatusInternalServerError, "Server error during login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	cfg := config.Load()
	signed, err := token.Issue(cfg.JWTSecret, user.ID, user.Role)
	if err != nil {
		logger.Logger.Errorw("token signing failed", "error", err)
		fail(c, http.StatusInternalServerError, "Server error during login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   signed,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
