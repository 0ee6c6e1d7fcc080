package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"musicbase/internal/config"
	"musicbase/internal/user"
)

// GET /users/all  [token]
func ListUsersHandler(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []user.User
		if err := database.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error", "error": err.Error()})
			return
		}
		result := make([]user.Response, 0, len(users))
		for i := range users {
			result = append(result, user.ToResponse(&users[i]))
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Users found", "data": result})
	}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /users/create  [no token — registration endpoint]
func CreateUserHandler(database *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		_ = c.ShouldBindJSON(&req)

		if msg := validateUserParameters(req.Username, req.Email, req.Password, req.Role); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}

		// Best-effort uniqueness pre-check. There is no unique index, so two
		// concurrent registrations with the same email can both pass here.
		var existing []user.User
		if err := database.Where("email = ?", req.Email).Find(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error", "error": err.Error()})
			return
		}
		if len(existing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "The email provided already exists"})
			return
		}

		pwHash, err := user.HashPassword(req.Password, cfg.BcryptCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error", "error": err.Error()})
			return
		}

		newUser := user.User{
			ID:             uuid.NewString(),
			Username:       req.Username,
			Email:          req.Email,
			Password:       pwHash,
			Active:         true,
			Role:           user.Role(req.Role),
			IsLoggedIn:     false,
			DateRegistered: time.Now(),
		}
		if err := database.Create(&newUser).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User created"})
	}
}

type UpdateUserRequest struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// PUT /users/update  [token]
//
// Full-row rewrite: the existing row is re-read and saved back with only
// username/email/role replaced; password, flags and timestamps carry
// through. The new values are not validated here.
func UpdateUserHandler(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserRequest
		_ = c.ShouldBindJSON(&req)

		var matches []user.User
		if err := database.Where("id = ?", req.ID).Find(&matches).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error", "error": err.Error()})
			return
		}
		if len(matches) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		u := matches[0]
		u.Username = req.Username
		u.Email = req.Email
		u.Role = user.Role(req.Role)
		if err := database.Save(&u).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User updated"})
	}
}

// PUT /users/delete/:id  [token]
func DeleteUserHandler(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := database.Delete(&user.User{}, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting user", "error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User deleted"})
	}
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
}

// GET /users/verify-email  [token]
//
// The lookup targets "pulic.users" — a schema reference inherited from the
// production database scripts that does not exist, so this path errors on
// any real store. Kept as-is pending product clarification (see DESIGN.md).
func VerifyEmailHandler(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyEmailRequest
		_ = c.ShouldBindJSON(&req)

		if len(req.Email) == 0 || !strings.Contains(req.Email, "@") || !strings.Contains(req.Email, ".") {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Provide a valid email"})
			return
		}

		var count int64
		if err := database.Table("pulic.users").Where("email = ?", req.Email).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error", "error": err.Error()})
			return
		}
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Email not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User found"})
	}
}
