package vision

const (
	CategoryFreshSalad   = "Fresh salad"
	CategoryTomatoDish   = "Tomato-based dish"
	CategoryHeartyStew   = "Hearty stew"
	CategorySweetDessert = "Sweet dessert/breakfast"
)

// Recipe is a canned suggestion attached to a category.
type Recipe struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

type Portions struct {
	RecommendedServing string `json:"recommended_serving"`
	EstimatedCalories  int    `json:"estimated_calories"`
}

// Result is the outcome of analyzing one image.
type Result struct {
	Category   string   `json:"category"`
	Confidence int      `json:"confidence"`
	Recipe     Recipe   `json:"recipe"`
	Portions   Portions `json:"portions"`
}

// Categories lists every label Analyze can return, in rule order.
var Categories = []string{
	CategoryFreshSalad,
	CategoryTomatoDish,
	CategoryHeartyStew,
	CategorySweetDessert,
}

var cannedResults = map[string]Result{
	CategoryFreshSalad: {
		Category:   CategoryFreshSalad,
		Confidence: 78,
		Recipe: Recipe{
			Title: "Mediterranean salad",
			Ingredients: []string{
				"2 cups mixed leafy greens",
				"1/2 cup cherry tomatoes",
				"1/4 cup diced cucumber",
				"Crumbled feta cheese",
				"Olive oil, lemon and oregano",
			},
			Steps: []string{
				"Toss the greens with the cucumber and tomatoes.",
				"Add the feta and dress with olive oil, lemon and oregano.",
			},
		},
		Portions: Portions{RecommendedServing: "1 individual bowl", EstimatedCalories: 320},
	},
	CategoryTomatoDish: {
		Category:   CategoryTomatoDish,
		Confidence: 74,
		Recipe: Recipe{
			Title: "Quick pasta pomodoro",
			Ingredients: []string{
				"120 g long pasta",
				"1 cup plain tomato sauce",
				"1 garlic clove",
				"Fresh basil leaves",
				"Olive oil and salt",
			},
			Steps: []string{
				"Cook the pasta al dente.",
				"Saute the garlic in oil, add the tomato sauce and simmer for 5 minutes.",
				"Toss with the pasta and garnish with basil.",
			},
		},
		Portions: Portions{RecommendedServing: "1 plate (about 2 cups)", EstimatedCalories: 540},
	},
	CategoryHeartyStew: {
		Category:   CategoryHeartyStew,
		Confidence: 70,
		Recipe: Recipe{
			Title: "Rustic stew",
			Ingredients: []string{
				"150 g meat or plant protein",
				"1 large potato",
				"1 carrot",
				"1 cup stock",
				"Spices to taste",
			},
			Steps: []string{
				"Brown the protein in a pot.",
				"Add the diced vegetables and the stock.",
				"Cook covered for 25 minutes until it thickens.",
			},
		},
		Portions: Portions{RecommendedServing: "1 deep plate", EstimatedCalories: 610},
	},
	CategorySweetDessert: {
		Category:   CategorySweetDessert,
		Confidence: 65,
		Recipe: Recipe{
			Title: "Fruit and yogurt parfait",
			Ingredients: []string{
				"1 cup plain yogurt",
				"1 cup assorted fresh fruit",
				"1/4 cup granola",
				"Honey to taste",
			},
			Steps: []string{
				"Layer yogurt, fruit and granola in a glass.",
				"Repeat until full and finish with a drizzle of honey.",
			},
		},
		Portions: Portions{RecommendedServing: "1 glass (250 ml)", EstimatedCalories: 380},
	},
}

// cannedResult returns a copy so callers never share the table's slices.
func cannedResult(category string) Result {
	r := cannedResults[category]
	r.Recipe.Ingredients = append([]string(nil), r.Recipe.Ingredients...)
	r.Recipe.Steps = append([]string(nil), r.Recipe.Steps...)
	return r
}
