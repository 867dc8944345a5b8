package services

import "backend/models"

// FallbackRecommendations returns the hand-authored suggestion set for
// a goal type. This is the result served whenever the generative model
// is unreachable or returns something unparseable, so it must always
// contain the full breakfast/lunch/dinner/snack x veg/non-veg grid.
func FallbackRecommendations(goalType string) []RecommendationItem {
	switch goalType {
	case models.GoalWeightGain:
		return weightGainFallback
	case models.GoalWeightLoss:
		return weightLossFallback
	default:
		return maintainFallback
	}
}

var weightLossFallback = []RecommendationItem{
	{
		FoodName:     "Vegetable omelette",
		Reason:       "High protein, low calorie start keeps you full through the morning",
		MealTime:     "breakfast",
		IsVegetarian: false,
		Nutrition:    NutritionFacts{Calories: 220, Protein: 18, Carbs: 6, Fat: 14},
		Description:  "Two-egg omelette with spinach, tomato and onion, cooked in minimal oil.",
	},
	{
		FoodName:     "Oats with berries",
		Reason:       "Slow-release carbs and fibre with modest calories",
		MealTime:     "breakfast",
		IsVegetarian: true,
		Nutrition:    NutritionFacts{Calories: 250, Protein: 8, Carbs: 45, Fat: 5},
		Description:  "Rolled oats cooked in water or skim milk, topped with a handful of berries.",
	},
	{
		FoodName:     "Grilled chicken salad",
		Reason:       "Lean protein with bulk from vegetables keeps lunch satisfying",
		MealTime:     "lunch",
		IsVegetarian: false,
		Nutrition:    NutritionFacts{Calories: 350, Protein: 35, Carbs: 12, Fat: 18},
		Description:  "Grilled chicken breast over mixed leaves with olive oil and lemon dressing.",
	},
	{
		FoodName:     "Lentil soup with whole-grain bread",
		Reason:       "Plant protein and fibre at a low calorie cost",
		MealTime:     "lunch",
		IsVegetarian: true,
		Nutrition:    NutritionFacts{Calories: 320, Protein: 16, Carbs: 50, Fat: 6},
		Description:  "Hearty lentil soup with a slice of whole-grain bread on the side.",
	},
	{
		FoodName:     "Baked fish with steamed vegetables",
		Reason:       "Light dinner rich in protein and omega-3",
		MealTime:     "dinner",
		IsVegetarian: false,
		Nutrition:    NutritionFacts{Calories: 330, Protein: 34, Carbs: 15, Fat: 14},
		Description:  "White fish fillet baked with herbs, served with steamed broccoli and carrots.",
	},
	{
		FoodName:     "Stir-fried tofu with vegetables",
		Reason:       "Filling plant protein without heavy carbs late in the day",
		MealTime:     "dinner",
		IsVegetarian: true,
		Nutrition:    NutritionFacts{Calories: 300, Protein: 20, Carbs: 18, Fat: 16},
		Description:  "Firm tofu stir-fried with peppers, mushrooms and a light soy glaze.",
	},
	{
		FoodName:     "Greek yogurt",
		Reason:       "Protein-dense snack that curbs cravings",
		MealTime:     "snack",
		IsVegetarian: false,
		Nutrition:    NutritionFacts{Calories: 120, Protein: 15, Carbs: 8, Fat: 3},
		Description:  "Plain low-fat Greek yogurt; add cinnamon instead of sugar.",
	},
	{
		FoodName:     "Apple with almonds",
		Reason:       "Fibre plus healthy fat bridges the gap between meals",
		MealTime:     "snack",
		IsVegetarian: true,
		Nutrition:    NutritionFacts{Calories: 180, Protein: 5, Carbs: 22, Fat: 9},
		Description:  "A medium apple with ten raw almonds.",
	},
}

var weightGainFallback = []RecommendationItem{
	{
		FoodName:     "Eggs with avocado toast",
		Reason:       "Calorie-dense breakfast with complete protein",
		MealTime:     "breakfast",
		IsVegetarian: false,
		Nutrition:    NutritionFacts{Calories: 520, Protein: 24, Carbs: 38, Fat: 30},
		Description:  "Two fried eggs on whole-grain toast with half an avocado.",
	},
	{
		FoodName:     "Peanut butter banana smoothie",
		Reason:       "Easy extra calories when appetite is low in the morning",
		MealTime:     "breakfast",
		IsVegetarian: true,
		Nutrition:    NutritionFacts{Calories: 480, Protein: 18, Carbs: 55, Fat: 22},
		Description:  "Whole milk blended with banana, oats and two spoons of peanut butter.",
	},
	{
		FoodName:     "Chicken and rice bowl",
		Reason:       "Classic surplus meal: lean protein over a large carb base",
		MealTime:     "lunch",
		IsVegetarian: false,
		Nutrition:    NutritionFacts{Calories: 650, Protein: 42, Carbs: 75, Fat: 18},
		Description:  "Grilled chicken thigh over white rice with roasted vegetables.",
	},
	{
		FoodName:     "Chickpea curry with rice",
		Reason:       "Plant protein and plenty of carbs for the surplus",
		MealTime:     "lunch",
		IsVegetarian: true,
		Nutrition:    NutritionFacts{Calories: 600, Protein: 20, Carbs: 90, Fat: 16},
		Description:  "Chickpeas simmered in a coconut tomato sauce, served over basmati rice.",
	},
	{
		FoodName:     "Beef pasta",
		Reason:       "Dense dinner that makes the calorie target achievable",
		MealTime:     "dinner",
		IsVegetarian: false,
		Nutrition:    NutritionFacts{Calories: 700, Protein: 38, Carbs: 80, Fat: 24},
		Description:  "Whole-wheat pasta with lean minced beef in tomato sauce, topped with cheese.",
	},
	{
		FoodName:     "Paneer with naan",
		Reason:       "High-calorie vegetarian dinner with dairy protein",
		MealTime:     "dinner",
		IsVegetarian: true,
		Nutrition:    NutritionFacts{Calories: 680, Protein: 28, Carbs: 70, Fat: 32},
		Description:  "Paneer cubes in a creamy tomato gravy with a buttered naan.",
	},
	{
		FoodName:     "Tuna sandwich",
		Reason:       "Substantial snack that adds protein between meals",
		MealTime:     "snack",
		IsVegetarian: false,
		Nutrition:    NutritionFacts{Calories: 320, Protein: 22, Carbs: 34, Fat: 10},
		Description:  "Tuna mixed with light mayo on two slices of whole-grain bread.",
	},
	{
		FoodName:     "Trail mix",
		Reason:       "Portable calorie-dense snack of nuts and dried fruit",
		MealTime:     "snack",
		IsVegetarian: true,
		Nutrition:    NutritionFacts{Calories: 300, Protein: 9, Carbs: 28, Fat: 18},
		Description:  "A handful of mixed nuts, seeds and raisins.",
	},
}

var maintainFallback = []RecommendationItem{
	{
		FoodName:     "Scrambled eggs with toast",
		Reason:       "Balanced protein and carbs to hold steady through the morning",
		MealTime:     "breakfast",
		IsVegetarian: false,
		Nutrition:    NutritionFacts{Calories: 350, Protein: 20, Carbs: 30, Fat: 16},
		Description:  "Two scrambled eggs with a slice of whole-grain toast.",
	},
	{
		FoodName:     "Muesli with yogurt",
		Reason:       "Whole grains, dairy and fruit in maintenance-sized portions",
		MealTime:     "breakfast",
		IsVegetarian: true,
		Nutrition:    NutritionFacts{Calories: 330, Protein: 12, Carbs: 50, Fat: 9},
		Description:  "Unsweetened muesli with plain yogurt and sliced banana.",
	},
	{
		FoodName:     "Turkey wrap",
		Reason:       "Moderate, balanced lunch that travels well",
		MealTime:     "lunch",
		IsVegetarian: false,
		Nutrition:    NutritionFacts{Calories: 450, Protein: 30, Carbs: 45, Fat: 15},
		Description:  "Sliced turkey, salad and hummus in a whole-wheat wrap.",
	},
	{
		FoodName:     "Quinoa vegetable bowl",
		Reason:       "Complete plant protein with a wide micronutrient spread",
		MealTime:     "lunch",
		IsVegetarian: true,
		Nutrition:    NutritionFacts{Calories: 430, Protein: 15, Carbs: 60, Fat: 14},
		Description:  "Quinoa with roasted vegetables, feta and a lemon dressing.",
	},
	{
		FoodName:     "Grilled salmon with potatoes",
		Reason:       "Omega-3 rich dinner sized to maintenance calories",
		MealTime:     "dinner",
		IsVegetarian: false,
		Nutrition:    NutritionFacts{Calories: 520, Protein: 36, Carbs: 40, Fat: 22},
		Description:  "Salmon fillet with boiled baby potatoes and green beans.",
	},
	{
		FoodName:     "Vegetable stir-fry with noodles",
		Reason:       "Light but complete vegetarian dinner",
		MealTime:     "dinner",
		IsVegetarian: true,
		Nutrition:    NutritionFacts{Calories: 460, Protein: 14, Carbs: 65, Fat: 15},
		Description:  "Egg noodles tossed with mixed vegetables, sesame and soy.",
	},
	{
		FoodName:     "Cottage cheese with crackers",
		Reason:       "Protein-forward snack without a calorie spike",
		MealTime:     "snack",
		IsVegetarian: false,
		Nutrition:    NutritionFacts{Calories: 200, Protein: 16, Carbs: 18, Fat: 7},
		Description:  "Half a cup of cottage cheese with whole-grain crackers.",
	},
	{
		FoodName:     "Banana with peanut butter",
		Reason:       "Quick balanced snack of fruit and healthy fat",
		MealTime:     "snack",
		IsVegetarian: true,
		Nutrition:    NutritionFacts{Calories: 220, Protein: 6, Carbs: 30, Fat: 10},
		Description:  "A banana with one spoon of natural peanut butter.",
	},
}
