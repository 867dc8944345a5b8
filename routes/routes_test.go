package routes

import (
	"testing"

	"backend/controllers"

	"github.com/gin-gonic/gin"
)

// The handlers are never invoked here; registration only needs the
// method values, so empty controllers are enough to pin the route table.
func routeSet(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := SetupRouter(nil, Controllers{
		Auth:           &controllers.AuthController{},
		User:           &controllers.UserController{},
		Nutrition:      &controllers.NutritionController{},
		Hydration:      &controllers.HydrationController{},
		Analytics:      &controllers.AnalyticsController{},
		Recommendation: &controllers.RecommendationController{},
	})

	set := map[string]bool{}
	for _, route := range r.Routes() {
		set[route.Method+" "+route.Path] = true
	}
	return set
}

func TestRouterExposesLogLifecycles(t *testing.T) {
	routes := routeSet(t)

	// Nutrition and hydration entries share the same lifecycle:
	// create, list, correct, delete.
	for _, want := range []string{
		"POST /logs/nutrition",
		"GET /logs/nutrition",
		"GET /logs/nutrition/recent",
		"GET /logs/nutrition/:id",
		"PUT /logs/nutrition/:id",
		"DELETE /logs/nutrition/:id",
		"POST /logs/nutrition/scan",
		"POST /logs/hydration",
		"POST /logs/hydration/scan",
		"GET /logs/hydration",
		"GET /logs/hydration/today",
		"PUT /logs/hydration/:id",
		"DELETE /logs/hydration/:id",
	} {
		if !routes[want] {
			t.Errorf("route %q not registered", want)
		}
	}
}

func TestRouterExposesAnalyticsAndRecommendations(t *testing.T) {
	routes := routeSet(t)

	for _, want := range []string{
		"GET /analytics/summary",
		"GET /analytics/targets",
		"GET /analytics/top-foods",
		"GET /recommendations",
		"GET /recommendations/cached",
		"POST /recommendations/cache",
	} {
		if !routes[want] {
			t.Errorf("route %q not registered", want)
		}
	}
}
