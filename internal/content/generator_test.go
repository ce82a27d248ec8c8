package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/fitquest/pkg/entity"
	"github.com/limbo/fitquest/pkg/logger"
)

type textGenFunc func(ctx context.Context, prompt string) (string, error)

func (f textGenFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func staticText(s string) TextGenerator {
	return textGenFunc(func(context.Context, string) (string, error) { return s, nil })
}

const validWorkouts = `Sure! Here you go:
[
  {"name": "Push Day", "description": "Chest and triceps [heavy]", "duration": 45, "difficulty": "Intermediate", "exercises": ["Bench press", "Dips"]},
  {"name": "Leg Day", "description": "Squats \"deep\"", "duration": 50, "difficulty": "intermediate", "exercises": ["Squat"]}
]
Enjoy your training.`

const validMeals = `[
 {"name": "Oats", "meal_type": "Breakfast", "calories": 400, "macros": {"protein": 15, "carbs": 60, "fat": 9}, "ingredients": ["oats", "milk"]},
 {"name": "Wrap", "meal_type": "lunch", "calories": 550, "macros": {"protein": 35, "carbs": 50, "fat": 18}, "ingredients": ["tortilla", "chicken"]},
 {"name": "Fish", "meal_type": "dinner", "calories": 600, "macros": {"protein": 40, "carbs": 45, "fat": 20}, "ingredients": ["cod", "potatoes"]}
]`

func TestExtractJSONArray(t *testing.T) {
	testCases := []struct {
		Desc     string
		Input    string
		Expected string
		Error    error
	}{
		{Desc: "bare array", Input: `[1,2]`, Expected: `[1,2]`},
		{Desc: "surrounded by prose", Input: "here: [{\"a\":[1]}] trailing [2]", Expected: `[{"a":[1]}]`},
		{Desc: "brackets inside strings", Input: `x ["a]", "b\"]"] y`, Expected: `["a]", "b\"]"]`},
		{Desc: "no array", Input: `{"a": 1}`, Error: errNoJSONArray},
		{Desc: "unbalanced", Input: `[1, [2, 3]`, Error: errNoJSONArray},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			result, err := extractJSONArray(tc.Input)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Expected, result)
		})
	}
}

func TestDecodeStrict(t *testing.T) {
	v := validator.New()
	t.Run("workouts normalized", func(t *testing.T) {
		workouts, err := decodeWorkouts(v, validWorkouts)
		require.NoError(t, err)
		require.Len(t, workouts, 2)
		assert.Equal(t, "intermediate", workouts[0].Difficulty)
		assert.Equal(t, "Chest and triceps [heavy]", workouts[0].Description)
	})
	t.Run("wrong count", func(t *testing.T) {
		_, err := decodeWorkouts(v, `[{"name":"a","description":"b","duration":30,"difficulty":"easy","exercises":["x"]}]`)
		assert.ErrorIs(t, err, errWrongCount)
	})
	t.Run("missing field is not defaulted", func(t *testing.T) {
		raw := strings.Replace(validMeals, `"calories": 400, `, "", 1)
		_, err := decodeMeals(v, raw)
		assert.Error(t, err)
	})
	t.Run("empty ingredients", func(t *testing.T) {
		raw := strings.Replace(validMeals, `["oats", "milk"]`, `[]`, 1)
		_, err := decodeMeals(v, raw)
		assert.Error(t, err)
	})
	t.Run("wrong type", func(t *testing.T) {
		raw := strings.Replace(validMeals, `"calories": 400`, `"calories": "lots"`, 1)
		_, err := decodeMeals(v, raw)
		assert.Error(t, err)
	})
	t.Run("missing macros object", func(t *testing.T) {
		raw := strings.Replace(validMeals, `"macros": {"protein": 15, "carbs": 60, "fat": 9}, `, "", 1)
		_, err := decodeMeals(v, raw)
		assert.Error(t, err)
	})
	t.Run("missing carbs", func(t *testing.T) {
		raw := strings.Replace(validMeals, `"carbs": 50, `, "", 1)
		_, err := decodeMeals(v, raw)
		assert.Error(t, err)
	})
	t.Run("null macro", func(t *testing.T) {
		raw := strings.Replace(validMeals, `"fat": 20`, `"fat": null`, 1)
		_, err := decodeMeals(v, raw)
		assert.Error(t, err)
	})
	t.Run("explicit zero macro", func(t *testing.T) {
		raw := strings.Replace(validMeals, `"fat": 9`, `"fat": 0`, 1)
		meals, err := decodeMeals(v, raw)
		require.NoError(t, err)
		assert.Zero(t, meals[0].Macros.Fat)
		assert.Equal(t, 60.0, meals[0].Macros.Carbs)
	})
	t.Run("meals", func(t *testing.T) {
		meals, err := decodeMeals(v, validMeals)
		require.NoError(t, err)
		require.Len(t, meals, 3)
		assert.Equal(t, "breakfast", meals[0].MealType)
		assert.Equal(t, 15.0, meals[0].Macros.Protein)
	})
}

func TestFallbackTables(t *testing.T) {
	t.Run("vegan wins over keto", func(t *testing.T) {
		meals := fallbackMeals(&entity.User{DietaryPreferences: []string{"Keto", "VEGAN"}})
		require.Len(t, meals, 3)
		assert.Equal(t, veganMeals[0].Name, meals[0].Name)
	})
	t.Run("keto", func(t *testing.T) {
		meals := fallbackMeals(&entity.User{DietaryPreferences: []string{"keto"}})
		assert.Equal(t, ketoMeals[2].Name, meals[2].Name)
	})
	t.Run("default meals in order", func(t *testing.T) {
		meals := fallbackMeals(&entity.User{})
		require.Len(t, meals, 3)
		assert.Equal(t, []string{"breakfast", "lunch", "dinner"}, []string{meals[0].MealType, meals[1].MealType, meals[2].MealType})
	})
	t.Run("workouts by goal and level", func(t *testing.T) {
		workouts := fallbackWorkouts(&entity.User{FitnessGoals: []string{"build_muscle"}, FitnessLevel: "advanced"})
		require.Len(t, workouts, 2)
		assert.Equal(t, "Upper Body Strength", workouts[0].Name)
		assert.Equal(t, 50, workouts[0].Duration)
		assert.Equal(t, "advanced", workouts[0].Difficulty)
	})
	t.Run("unknown level is beginner", func(t *testing.T) {
		workouts := fallbackWorkouts(&entity.User{FitnessLevel: "pro"})
		assert.Equal(t, "beginner", workouts[1].Difficulty)
		assert.Equal(t, 20, workouts[1].Duration)
	})
	t.Run("fallback copies are independent", func(t *testing.T) {
		meals := fallbackMeals(&entity.User{})
		meals[0].Ingredients[0] = "changed"
		assert.NotEqual(t, "changed", defaultMeals[0].Ingredients[0])
	})
	t.Run("quote by goal keyword", func(t *testing.T) {
		assert.Equal(t, fallbackQuotes[goalWeightLoss], fallbackQuote("Weight-Loss"))
		assert.Equal(t, fallbackQuotes[goalEndurance], fallbackQuote("marathon prep"))
		assert.Equal(t, fallbackQuotes[goalGeneral], fallbackQuote(""))
	})
}

func TestGeneratorFallsBack(t *testing.T) {
	user := &entity.User{FitnessGoals: []string{"weight loss"}, DietaryPreferences: []string{"keto"}}
	ctx := context.Background()
	testCases := []struct {
		Desc string
		LLM  TextGenerator
	}{
		{Desc: "no api key", LLM: nil},
		{Desc: "upstream error", LLM: textGenFunc(func(context.Context, string) (string, error) { return "", errors.New("503") })},
		{Desc: "garbage output", LLM: staticText("I cannot help with that.")},
		{Desc: "invalid items", LLM: staticText(`[{"name": ""}, {"name": ""}, {"name": ""}]`)},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			g := NewWithTextGenerator(tc.LLM, time.Second, logger.Discard())
			assert.Equal(t, fallbackWorkouts(user), g.GenerateWorkouts(ctx, user))
			assert.Equal(t, fallbackMeals(user), g.GenerateMeals(ctx, user))
			assert.Equal(t, fallbackQuote("weight loss"), g.GenerateMotivationalQuote(ctx, "weight loss"))
		})
	}
}

func TestGeneratorTimeout(t *testing.T) {
	slow := textGenFunc(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	g := NewWithTextGenerator(slow, 20*time.Millisecond, logger.Discard())
	start := time.Now()
	quote := g.GenerateMotivationalQuote(context.Background(), "strength")
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, fallbackQuotes[goalMuscle], quote)
}

func TestGeneratorUsesModelOutput(t *testing.T) {
	g := NewWithTextGenerator(textGenFunc(func(_ context.Context, prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "workouts"):
			return validWorkouts, nil
		case strings.Contains(prompt, "meals"):
			return validMeals, nil
		}
		return `"Sweat now, shine later."`, nil
	}), time.Second, logger.Discard())
	ctx := context.Background()
	user := &entity.User{}
	assert.Equal(t, "Push Day", g.GenerateWorkouts(ctx, user)[0].Name)
	assert.Equal(t, "Wrap", g.GenerateMeals(ctx, user)[1].Name)
	assert.Equal(t, "Sweat now, shine later.", g.GenerateMotivationalQuote(ctx, "anything"))
}

func TestOpenAIClient(t *testing.T) {
	var gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Model string `json:"model"`
		}
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotModel = req.Model
		body, _ := sonic.Marshal(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   req.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": validMeals},
			}},
		})
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	defer server.Close()

	g := New(Config{APIKey: "test-key", BaseURL: server.URL + "/v1", Model: "test-model", Timeout: 2 * time.Second}, logger.Discard())
	meals := g.GenerateMeals(context.Background(), &entity.User{})
	require.Len(t, meals, 3)
	assert.Equal(t, "Oats", meals[0].Name)
	assert.Equal(t, "test-model", gotModel)

	t.Run("upstream failure falls back", func(t *testing.T) {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer failing.Close()
		g := New(Config{APIKey: "test-key", BaseURL: failing.URL, Timeout: time.Second}, logger.Discard())
		assert.Equal(t, fallbackMeals(&entity.User{}), g.GenerateMeals(context.Background(), &entity.User{}))
	})
}
