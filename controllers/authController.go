package controllers

import (
	"HomoCure/handlers"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes the doctor authentication routes
func (ac *AuthController) RegisterRoutes(router *gin.Engine, sessionAuth gin.HandlerFunc) {
	router.GET("/doctor/specializations", ac.Handler.Specializations)

	doctorGroup := router.Group("/doctor").Use(sessionAuth)
	{
		doctorGroup.POST("/mode", ac.Handler.SetMode)
		doctorGroup.PATCH("/form", ac.Handler.UpdateForm)
		doctorGroup.POST("/login", ac.Handler.Login)
		doctorGroup.POST("/register", ac.Handler.Register)
		doctorGroup.POST("/logout", ac.Handler.Logout)
	}
}
