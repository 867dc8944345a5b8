package routes

import (
    "backend/controllers"
    "backend/middlewares"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"
)

type Controllers struct {
    Auth           *controllers.AuthController
    User           *controllers.UserController
    Nutrition      *controllers.NutritionController
    Hydration      *controllers.HydrationController
    Analytics      *controllers.AnalyticsController
    Recommendation *controllers.RecommendationController
}

func SetupRouter(db *gorm.DB, ctrl Controllers) *gin.Engine {
    r := gin.Default()

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", ctrl.Auth.Register)
        auth.POST("/login", ctrl.Auth.Login)
        auth.POST("/forgot-password", ctrl.Auth.ForgotPassword)
        auth.POST("/reset-password", ctrl.Auth.ResetPassword)
    }

    // Protected user routes
    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware(db))
    {
        user.GET("/profile", ctrl.User.GetProfile)
        user.PUT("/profile", ctrl.User.UpdateProfile)
        user.POST("/onboarding", ctrl.User.CompleteOnboarding)
    }

    logs := r.Group("/logs")
    logs.Use(middlewares.AuthMiddleware(db))
    {
        logs.POST("/nutrition", ctrl.Nutrition.Log)
        logs.GET("/nutrition", ctrl.Nutrition.List)
        logs.GET("/nutrition/recent", ctrl.Nutrition.ListRecent)
        logs.GET("/nutrition/:id", ctrl.Nutrition.Get)
        logs.PUT("/nutrition/:id", ctrl.Nutrition.Update)
        logs.DELETE("/nutrition/:id", ctrl.Nutrition.Delete)
        logs.POST("/nutrition/scan", ctrl.Nutrition.Scan)

        logs.POST("/hydration", ctrl.Hydration.Log)
        logs.POST("/hydration/scan", ctrl.Hydration.LogFromImage)
        logs.GET("/hydration", ctrl.Hydration.List)
        logs.GET("/hydration/today", ctrl.Hydration.Today)
        logs.PUT("/hydration/:id", ctrl.Hydration.Update)
        logs.DELETE("/hydration/:id", ctrl.Hydration.Delete)
    }

    analytics := r.Group("/analytics")
    analytics.Use(middlewares.AuthMiddleware(db))
    {
        analytics.GET("/summary", ctrl.Analytics.GetSummary)
        analytics.GET("/targets", ctrl.Analytics.GetTargets)
        analytics.GET("/top-foods", ctrl.Analytics.GetTopFoods)
    }

    recs := r.Group("/recommendations")
    recs.Use(middlewares.AuthMiddleware(db))
    {
        recs.GET("", ctrl.Recommendation.Get)
        recs.GET("/cached", ctrl.Recommendation.GetCached)
        recs.POST("/cache", ctrl.Recommendation.CacheLast)
    }

    return r
}
