package routes

import (
	"soiladvisor/internal/controllers"
	"soiladvisor/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

func RegisterDashboardRoutes(router *gin.Engine, store sessions.Store, dashboardController *controllers.DashboardController, resultsController *controllers.ResultsController) {
	gated := router.Group("/")
	gated.Use(middleware.RequireLogin(store))
	{
		gated.GET("/dashboard", dashboardController.Show)
		gated.POST("/dashboard", dashboardController.Submit)
		gated.GET("/results", resultsController.Show)
	}

	// Ungated by design; see the results controller.
	router.GET("/download/:filename", resultsController.Download)
}
