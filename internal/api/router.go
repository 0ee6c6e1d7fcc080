package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"musicbase/internal/auth"
	"musicbase/internal/config"
)

func SetupRouter(database *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	requireToken := auth.RequireToken(database, cfg.Server.JWTSecret)

	group := r.Group("/api/v1")
	{
		group.GET("/", func(c *gin.Context) {
			c.String(http.StatusOK, "Welcome to the API base")
		})

		// Users. Registration takes no token; the rest of the set does.
		group.GET("/users/all", requireToken, ListUsersHandler(database))
		group.POST("/users/create", CreateUserHandler(database, cfg))
		group.PUT("/users/update", requireToken, UpdateUserHandler(database))
		group.PUT("/users/delete/:id", requireToken, DeleteUserHandler(database))
		group.GET("/users/verify-email", requireToken, VerifyEmailHandler(database))

		// Musics. Listing is public; everything else is gated.
		group.GET("/musics/all", ListMusicsHandler(database))
		group.GET("/musics/find/:id", requireToken, GetMusicByIdHandler(database))
		group.POST("/musics/create", requireToken, CreateMusicHandler(database))
		group.PUT("/musics/update", requireToken, UpdateMusicHandler(database))
		group.DELETE("/musics/delete/:id", requireToken, DeleteMusicHandler(database))

		// Auth
		group.POST("/auth/login", LoginHandler(database, cfg))
		group.POST("/auth/logout/:id", LogoutHandler(database))
		group.POST("/auth/verify-token/:token", VerifyTokenHandler(database, cfg))
	}

	return r
}
