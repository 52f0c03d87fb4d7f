package routes

import (
	"soiladvisor/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	router.GET("/", authController.Home)
	router.GET("/signup", authController.ShowSignup)
	router.POST("/signup", authController.Signup)
	router.GET("/login", authController.ShowLogin)
	router.POST("/login", authController.Login)
	router.GET("/logout", authController.Logout)
}
