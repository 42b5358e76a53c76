package server

import (
	"github.com/gin-gonic/gin"
	"github.com/thereayou/devlink/internal/handlers"
	"github.com/thereayou/devlink/internal/middleware"
	"github.com/thereayou/devlink/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	jwtMgr *auth.JWTManager,
	authH *handlers.AuthHandler,
	userH *handlers.UserHandler,
	profileH *handlers.ProfileHandler,
	githubH *handlers.GithubHandler,
	wsH *handlers.WSHandler,
) {
	authRequired := middleware.AuthMiddleware(jwtMgr)

	api := r.Group("/api")
	{
		api.POST("/users", userH.Register)

		api.GET("/auth", authRequired, authH.GetMe)
		api.POST("/auth", authH.Login)

		profile := api.Group("/profile")
		{
			profile.GET("/me", authRequired, profileH.GetMyProfile)
			profile.POST("", authRequired, profileH.UpsertProfile)
			profile.GET("", profileH.GetAllProfiles)
			profile.GET("/user/:user_id", profileH.GetProfileByUserID)
			profile.DELETE("", authRequired, profileH.DeleteProfile)
			profile.GET("/github/:username", githubH.Repos)
		}
	}

	r.GET("/ws", wsH.Serve)
}
