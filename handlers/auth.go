package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/auth"
	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
)

type RegisterRequest struct {
	Username string          `json:"username" binding:"required"`
	Password string          `json:"password" binding:"required,min=6"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Role     models.UserRole `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user account. Self-registration is limited to
// customer and driver roles; omitted role defaults to customer.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Role == "" {
		req.Role = models.RoleCustomer
	}
	if !models.RegistrationRoles[req.Role] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: customer or driver"})
		return
	}

	var existing models.User
	if err := config.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username: req.Username,
		Password: hash,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "created", "id": user.ID})
}

// Login authenticates by username or email and returns a bearer token.
// Accounts still carrying legacy cleartext material are migrated to a
// bcrypt hash on the first successful login; that write is best-effort.
func Login(ts *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Password == "" || (req.Username == "" && req.Email == "") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username (or email) and password required"})
			return
		}

		var user models.User
		query := config.DB
		if req.Username != "" {
			query = query.Where("username = ?", req.Username)
		} else {
			query = query.Where("email = ?", req.Email)
		}
		if err := query.First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		ok, needsRehash := auth.VerifyPassword(req.Password, user.Password)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if needsRehash {
			if hash, err := auth.HashPassword(req.Password); err == nil {
				if err := config.DB.Model(&user).Update("password", hash).Error; err != nil {
					log.Printf("Password migration failed for user %d: %v", user.ID, err)
				}
			}
		}

		token, err := ts.Issue(user.ID, user.Username, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "role": user.Role})
	}
}

// GetProfile returns the authenticated user's account.
func GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
