package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/limbo/fitquest/pkg/entity"
)

var (
	errNoJSONArray = errors.New("no JSON array in model output")
	errWrongCount  = errors.New("unexpected number of items in model output")
)

type workoutItem struct {
	Name        string   `json:"name" validate:"required,max=120"`
	Description string   `json:"description" validate:"required,max=600"`
	Duration    int      `json:"duration" validate:"required,min=5,max=180"`
	Difficulty  string   `json:"difficulty" validate:"required,max=40"`
	Exercises   []string `json:"exercises" validate:"required,min=1,max=15,dive,required"`
}

// Pointers keep a missing key apart from an explicit zero.
type macrosItem struct {
	Protein *float64 `json:"protein" validate:"required,gte=0,lte=300"`
	Carbs   *float64 `json:"carbs" validate:"required,gte=0,lte=500"`
	Fat     *float64 `json:"fat" validate:"required,gte=0,lte=300"`
}

type mealItem struct {
	Name        string      `json:"name" validate:"required,max=120"`
	MealType    string      `json:"meal_type" validate:"required,max=40"`
	Calories    int         `json:"calories" validate:"required,min=50,max=3000"`
	Macros      *macrosItem `json:"macros" validate:"required"`
	Ingredients []string    `json:"ingredients" validate:"required,min=1,max=25,dive,required"`
}

// extractJSONArray returns the first balanced top-level JSON array in s, skipping brackets inside strings.
func extractJSONArray(s string) (string, error) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", errNoJSONArray
	}
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", errNoJSONArray
}

func decodeItems[T any](v *validator.Validate, raw string, want int) ([]T, error) {
	arr, err := extractJSONArray(raw)
	if err != nil {
		return nil, err
	}
	var items []T
	if err = sonic.UnmarshalString(arr, &items); err != nil {
		return nil, fmt.Errorf("decoding model output: %w", err)
	}
	if len(items) != want {
		return nil, fmt.Errorf("%w: got %d, want %d", errWrongCount, len(items), want)
	}
	for i := range items {
		if err = v.Struct(items[i]); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return items, nil
}

func decodeWorkouts(v *validator.Validate, raw string) ([]entity.WorkoutSuggestion, error) {
	items, err := decodeItems[workoutItem](v, raw, workoutCount)
	if err != nil {
		return nil, err
	}
	result := make([]entity.WorkoutSuggestion, 0, len(items))
	for _, it := range items {
		result = append(result, entity.WorkoutSuggestion{
			Name:        strings.TrimSpace(it.Name),
			Description: strings.TrimSpace(it.Description),
			Duration:    it.Duration,
			Difficulty:  strings.ToLower(strings.TrimSpace(it.Difficulty)),
			Exercises:   it.Exercises,
		})
	}
	return result, nil
}

func decodeMeals(v *validator.Validate, raw string) ([]entity.MealSuggestion, error) {
	items, err := decodeItems[mealItem](v, raw, mealCount)
	if err != nil {
		return nil, err
	}
	result := make([]entity.MealSuggestion, 0, len(items))
	for _, it := range items {
		result = append(result, entity.MealSuggestion{
			Name:     strings.TrimSpace(it.Name),
			MealType: strings.ToLower(strings.TrimSpace(it.MealType)),
			Calories: it.Calories,
			Macros: entity.Macros{
				Protein: *it.Macros.Protein,
				Carbs:   *it.Macros.Carbs,
				Fat:     *it.Macros.Fat,
			},
			Ingredients: it.Ingredients,
		})
	}
	return result, nil
}

// cleanQuote strips wrapping quotes and rejects output that does not look like a single short quote.
func cleanQuote(raw string) (string, bool) {
	q := strings.TrimSpace(raw)
	q = strings.Trim(q, "\"'“”")
	q = strings.TrimSpace(q)
	if len(q) < 10 || len(q) > 300 || strings.ContainsAny(q, "\n{}[]") {
		return "", false
	}
	return q, true
}
