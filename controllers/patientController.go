package controllers

import (
	"HomoCure/handlers"

	"github.com/gin-gonic/gin"
)

func SetupPatientRoutes(router *gin.Engine, sessionAuth gin.HandlerFunc, patientHandler *handlers.PatientHandler, remedyHandler *handlers.RemedyHandler, portalHandler *handlers.PortalHandler, registrationHandler *handlers.RegistrationHandler) {
	dashboard := router.Group("/dashboard").Use(sessionAuth)
	{
		dashboard.GET("/patients", patientHandler.SearchPatients)
		dashboard.PATCH("/patients/draft", patientHandler.UpdateDraft)
		dashboard.POST("/patients", patientHandler.CreatePatient)
		dashboard.POST("/remedies", remedyHandler.SuggestRemedy)
	}

	router.GET("/portal/tokens", portalHandler.DemoTokens)
	portal := router.Group("/portal").Use(sessionAuth)
	{
		portal.POST("/lookup", portalHandler.Lookup)
		portal.POST("/logout", portalHandler.Logout)
	}

	registration := router.Group("/registration").Use(sessionAuth)
	{
		registration.PATCH("/form", registrationHandler.UpdateForm)
		registration.POST("", registrationHandler.Submit)
	}
}
