package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"musicbase/internal/auth"
	"musicbase/internal/config"
	"musicbase/internal/user"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/login
func LoginHandler(database *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		_ = c.ShouldBindJSON(&req)

		if msg := validateCredentials(req.Email, req.Password); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}

		var matches []user.User
		if err := database.Where("email = ?", req.Email).Find(&matches).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error", "error": err.Error()})
			return
		}
		if len(matches) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		if len(matches) > 1 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Duplicate email record"})
			return
		}

		u := matches[0]
		if err := user.CheckPassword(u.Password, req.Password); err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "The credentials are incorrect"})
				return
			}
			// Hash primitive failure (e.g. malformed digest) is not a
			// credential mismatch.
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error", "error": err.Error()})
			return
		}

		// Flags are persisted before the token is issued; a signing failure
		// below leaves them set (non-atomic two-step, kept as such).
		now := time.Now()
		u.IsLoggedIn = true
		u.LastLoggedIn = &now
		if err := database.Save(&u).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error", "error": err.Error()})
			return
		}

		token, err := auth.GenerateToken(cfg.Server.JWTSecret, u.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate access token", "error": err.Error()})
			return
		}

		c.SetCookie("token", token, int(auth.TokenTTL.Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "User authenticated",
			"token":   token,
			"user": gin.H{
				"id":              u.ID,
				"username":        u.Username,
				"email":           u.Email,
				"role":            u.Role,
				"active":          u.Active,
				"date_registered": u.DateRegistered,
			},
		})
	}
}

// POST /auth/logout/:id
//
// Keyed by the user id path parameter, not by a token: logout requires no
// authentication and is idempotent.
func LogoutHandler(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var matches []user.User
		if err := database.Where("id = ?", id).Find(&matches).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error", "error": err.Error()})
			return
		}
		if len(matches) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found"})
			return
		}

		u := matches[0]
		now := time.Now()
		u.IsLoggedIn = false
		u.LastLoggedOut = &now
		if err := database.Save(&u).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User logged out"})
	}
}

// POST /auth/verify-token/:token
func VerifyTokenHandler(database *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, rerr := auth.Resolve(database, cfg.Server.JWTSecret, c)
		if rerr != nil {
			c.JSON(rerr.Status, gin.H{"success": false, "message": rerr.Message, "error": rerr.Detail()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Valid token",
			"token":   session.Token,
			"user":    user.ToResponse(&session.User),
		})
	}
}
