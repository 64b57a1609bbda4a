package controllers

import (
	"HomoCure/handlers"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Handler *handlers.SessionHandler
}

func NewSessionController(sessionHandler *handlers.SessionHandler) *SessionController {
	return &SessionController{
		Handler: sessionHandler,
	}
}

// RegisterRoutes initializes the session routes. Everything but session
// creation requires a valid session token.
func (sc *SessionController) RegisterRoutes(router *gin.Engine, sessionAuth gin.HandlerFunc) {
	router.POST("/sessions", sc.Handler.CreateSession)

	sessionGroup := router.Group("/session").Use(sessionAuth)
	{
		sessionGroup.GET("", sc.Handler.GetSession)
		sessionGroup.DELETE("", sc.Handler.EndSession)
		sessionGroup.POST("/navigate", sc.Handler.Navigate)
	}
}
