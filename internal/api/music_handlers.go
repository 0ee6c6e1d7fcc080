package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"musicbase/internal/auth"
	"musicbase/internal/music"
)

var validOrderFields = []string{"title", "category", "id", "date_created"}

// GET /musics/all  [no token]
//
// ?order= is constrained to an allow-list and silently falls back to title,
// so the column name is safe to interpolate into the ORDER BY.
func ListMusicsHandler(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderBy := c.Query("order")
		valid := false
		for _, f := range validOrderFields {
			if orderBy == f {
				valid = true
				break
			}
		}
		if !valid {
			orderBy = "title"
		}

		var musics []music.Music
		if err := database.Order(orderBy).Find(&musics).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": musics})
	}
}

// GET /musics/find/:id  [token]
//
// A missing id still answers 200 with a null payload, not 404.
func GetMusicByIdHandler(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var matches []music.Music
		if err := database.Where("id = ?", id).Find(&matches).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error", "error": err.Error()})
			return
		}

		var data interface{}
		if len(matches) > 0 {
			data = matches[0]
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Music found", "data": data})
	}
}

type MusicRequest struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Artiste   string `json:"artiste"`
	Category  string `json:"category"`
	LinkYT    string `json:"link_yt"`
	LinkCifra string `json:"link_cifra"`
}

// POST /musics/create  [token]
func CreateMusicHandler(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := auth.SessionFrom(c)

		var req MusicRequest
		_ = c.ShouldBindJSON(&req)

		if msg := validateMusicFields(req.Title, req.Artiste, req.Category, req.LinkYT); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}

		m := music.Music{
			Title:        req.Title,
			Artiste:      req.Artiste,
			Category:     req.Category,
			LinkYT:       req.LinkYT,
			LinkCifra:    req.LinkCifra,
			RegisteredBy: session.User.Username,
			UserID:       session.User.ID,
			DateCreated:  time.Now(),
		}
		if err := database.Create(&m).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Music registered", "data": m})
	}
}

// PUT /musics/update  [token]
//
// Full-row rewrite preserving registered_by, user_id and date_created from
// the existing row, whatever the request body says.
func UpdateMusicHandler(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MusicRequest
		_ = c.ShouldBindJSON(&req)

		if msg := validateMusicFields(req.Title, req.Artiste, req.Category, req.LinkYT); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}

		var matches []music.Music
		if err := database.Where("id = ?", req.ID).Find(&matches).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error", "error": err.Error()})
			return
		}
		if len(matches) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Music not found in the database"})
			return
		}

		m := matches[0]
		m.Title = req.Title
		m.Artiste = req.Artiste
		m.Category = req.Category
		m.LinkYT = req.LinkYT
		m.LinkCifra = req.LinkCifra
		if err := database.Save(&m).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Music updated"})
	}
}

// DELETE /musics/delete/:id  [token]
func DeleteMusicHandler(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		if err := database.Delete(&music.Music{}, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Music deleted"})
	}
}
