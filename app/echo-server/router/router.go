package router

import (
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authOptional echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authOptional)

	reco.GET("", handler.Recommend)
	reco.POST("", handler.Recommend)
	reco.GET("/explain", handler.Explain)
	reco.GET("/health", handler.Health)
}

func SetupTutorRoutes(api *echo.Group, handler *rest.TutorHandler, authRequired echo.MiddlewareFunc) {
	tutors := api.Group("/tutors")

	tutors.GET("", handler.GetAllTutors)
	tutors.GET("/:id", handler.GetTutorByID)
	tutors.POST("", handler.CreateTutor, authRequired)
}

func SetupInteractionRoutes(api *echo.Group, handler *rest.InteractionHandler, authRequired echo.MiddlewareFunc) {
	interactions := api.Group("/interactions", authRequired)

	interactions.POST("", handler.RateTutor)
	interactions.GET("", handler.MyInteractions)
}

func SetupStudentRoutes(api *echo.Group, handler *rest.StudentHandler, authRequired echo.MiddlewareFunc) {
	students := api.Group("/students", authRequired)

	students.PUT("/preferences", handler.SavePreferences)
	students.GET("/preferences", handler.MyPreferences)
}
