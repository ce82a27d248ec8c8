package content

import (
	"strings"

	"github.com/limbo/fitquest/pkg/entity"
)

const (
	workoutCount = 2
	mealCount    = 3
)

type goalKind int

const (
	goalGeneral goalKind = iota
	goalWeightLoss
	goalMuscle
	goalEndurance
)

// goalKeywords is checked in order; the first goal containing a keyword decides the kind.
var goalKeywords = []struct {
	kind     goalKind
	keywords []string
}{
	{goalWeightLoss, []string{"weight loss", "lose weight", "fat loss", "lean"}},
	{goalMuscle, []string{"muscle", "strength", "bulk"}},
	{goalEndurance, []string{"endurance", "cardio", "stamina", "marathon"}},
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", " ", "-", " ").Replace(s)
}

func classifyGoal(goals ...string) goalKind {
	for _, entry := range goalKeywords {
		for _, g := range goals {
			ng := normalize(g)
			for _, kw := range entry.keywords {
				if strings.Contains(ng, kw) {
					return entry.kind
				}
			}
		}
	}
	return goalGeneral
}

func hasPreference(prefs []string, want string) bool {
	for _, p := range prefs {
		if normalize(p) == want {
			return true
		}
	}
	return false
}

func levelOf(user *entity.User) string {
	switch normalize(user.FitnessLevel) {
	case "intermediate":
		return "intermediate"
	case "advanced":
		return "advanced"
	}
	return "beginner"
}

var levelMinutes = map[string]int{
	"beginner":     20,
	"intermediate": 35,
	"advanced":     50,
}

type workoutTemplate struct {
	name        string
	description string
	exercises   []string
}

var fallbackWorkoutTable = map[goalKind][workoutCount]workoutTemplate{
	goalWeightLoss: {
		{"HIIT Fat Burner", "Short intervals of high effort followed by active rest.", []string{"Jumping jacks", "Burpees", "Mountain climbers", "High knees"}},
		{"Full-Body Circuit", "A circuit of compound moves with minimal rest between stations.", []string{"Goblet squats", "Push-ups", "Kettlebell swings", "Plank"}},
	},
	goalMuscle: {
		{"Upper Body Strength", "Heavy compound pressing and pulling with full rest between sets.", []string{"Bench press", "Bent-over rows", "Overhead press", "Pull-ups"}},
		{"Lower Body Power", "Squat and hinge patterns for leg and posterior chain strength.", []string{"Back squats", "Romanian deadlifts", "Walking lunges", "Calf raises"}},
	},
	goalEndurance: {
		{"Steady State Cardio", "Continuous moderate effort to build aerobic base.", []string{"Easy run", "Rowing", "Cycling"}},
		{"Tempo Intervals", "Sustained efforts just below threshold pace.", []string{"Tempo run", "Stair climber", "Jump rope"}},
	},
	goalGeneral: {
		{"Total Body Basics", "Balanced routine covering every major muscle group.", []string{"Bodyweight squats", "Push-ups", "Glute bridges", "Dead bugs"}},
		{"Mobility and Core", "Joint mobility work followed by core stability.", []string{"Cat-cow", "World's greatest stretch", "Side plank", "Bird dog"}},
	},
}

func fallbackWorkouts(user *entity.User) []entity.WorkoutSuggestion {
	level := levelOf(user)
	minutes := levelMinutes[level]
	templates := fallbackWorkoutTable[classifyGoal(user.FitnessGoals...)]
	result := make([]entity.WorkoutSuggestion, 0, workoutCount)
	for _, tpl := range templates {
		result = append(result, entity.WorkoutSuggestion{
			Name:        tpl.name,
			Description: tpl.description,
			Duration:    minutes,
			Difficulty:  level,
			Exercises:   append([]string(nil), tpl.exercises...),
		})
	}
	return result
}

var (
	veganMeals = [mealCount]entity.MealSuggestion{
		{Name: "Tofu Scramble", MealType: "breakfast", Calories: 380, Macros: entity.Macros{Protein: 24, Carbs: 30, Fat: 16}, Ingredients: []string{"firm tofu", "spinach", "bell pepper", "whole grain toast"}},
		{Name: "Chickpea Buddha Bowl", MealType: "lunch", Calories: 560, Macros: entity.Macros{Protein: 22, Carbs: 78, Fat: 18}, Ingredients: []string{"chickpeas", "quinoa", "sweet potato", "tahini"}},
		{Name: "Lentil Curry", MealType: "dinner", Calories: 610, Macros: entity.Macros{Protein: 28, Carbs: 82, Fat: 16}, Ingredients: []string{"red lentils", "coconut milk", "tomatoes", "brown rice"}},
	}
	ketoMeals = [mealCount]entity.MealSuggestion{
		{Name: "Avocado Egg Skillet", MealType: "breakfast", Calories: 450, Macros: entity.Macros{Protein: 20, Carbs: 8, Fat: 38}, Ingredients: []string{"eggs", "avocado", "spinach", "olive oil"}},
		{Name: "Grilled Chicken Caesar", MealType: "lunch", Calories: 580, Macros: entity.Macros{Protein: 45, Carbs: 10, Fat: 40}, Ingredients: []string{"chicken breast", "romaine", "parmesan", "caesar dressing"}},
		{Name: "Salmon with Asparagus", MealType: "dinner", Calories: 620, Macros: entity.Macros{Protein: 42, Carbs: 9, Fat: 45}, Ingredients: []string{"salmon fillet", "asparagus", "butter", "lemon"}},
	}
	defaultMeals = [mealCount]entity.MealSuggestion{
		{Name: "Greek Yogurt Parfait", MealType: "breakfast", Calories: 350, Macros: entity.Macros{Protein: 22, Carbs: 45, Fat: 8}, Ingredients: []string{"greek yogurt", "berries", "granola", "honey"}},
		{Name: "Turkey Quinoa Bowl", MealType: "lunch", Calories: 540, Macros: entity.Macros{Protein: 38, Carbs: 55, Fat: 15}, Ingredients: []string{"ground turkey", "quinoa", "black beans", "salsa"}},
		{Name: "Chicken Stir-Fry", MealType: "dinner", Calories: 590, Macros: entity.Macros{Protein: 40, Carbs: 60, Fat: 18}, Ingredients: []string{"chicken thigh", "broccoli", "brown rice", "soy sauce"}},
	}
)

func fallbackMeals(user *entity.User) []entity.MealSuggestion {
	table := defaultMeals
	switch {
	case hasPreference(user.DietaryPreferences, "vegan"):
		table = veganMeals
	case hasPreference(user.DietaryPreferences, "keto"):
		table = ketoMeals
	}
	result := make([]entity.MealSuggestion, 0, mealCount)
	for _, m := range table {
		m.Ingredients = append([]string(nil), m.Ingredients...)
		result = append(result, m)
	}
	return result
}

var fallbackQuotes = map[goalKind]string{
	goalWeightLoss: "Every rep and every healthy choice is a step toward a lighter, stronger you.",
	goalMuscle:     "Strength is built one heavy set at a time. Show up and lift.",
	goalEndurance:  "Distance is just patience in motion. Keep moving forward.",
	goalGeneral:    "Progress, not perfection. Small daily wins add up to big results.",
}

func fallbackQuote(goal string) string {
	return fallbackQuotes[classifyGoal(goal)]
}
