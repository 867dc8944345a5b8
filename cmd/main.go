package main

import (
	"context"
	"log"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	db := config.InitDB()
	utils.InitS3()

	gemini, err := services.NewGeminiService(context.Background())
	if err != nil {
		log.Fatalf("Gemini init failed: %v", err)
	}
	defer gemini.Close()

	authSvc := services.NewAuthService(db)
	userSvc := services.NewUserService(db)
	nutritionSvc := services.NewNutritionService(db)
	hydrationSvc := services.NewHydrationService(db)
	analyticsSvc := services.NewAnalyticsService(db)
	scanSvc := services.NewFoodScanService(db, gemini)
	recSvc := services.NewRecommendationService(db, gemini)

	r := routes.SetupRouter(db, routes.Controllers{
		Auth:           controllers.NewAuthController(authSvc),
		User:           controllers.NewUserController(userSvc),
		Nutrition:      controllers.NewNutritionController(nutritionSvc, scanSvc),
		Hydration:      controllers.NewHydrationController(hydrationSvc, userSvc, scanSvc),
		Analytics:      controllers.NewAnalyticsController(analyticsSvc),
		Recommendation: controllers.NewRecommendationController(recSvc, userSvc, analyticsSvc),
	})
	r.Run(":8080")
}
