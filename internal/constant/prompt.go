package constant

import "fmt"

const workoutPromptTemplate = `You are a certified personal trainer. Create a %s workout plan for the goal "%s".
Each daily session should last about %d minutes, spread across %d training days per week.

Respond with STRICT JSON only, no markdown fences, no commentary, exactly this shape:
{
  "workout_plan": {
    "warm_up": {"exercises": [{"name": "...", "sets": 1, "reps": "...", "duration": "...", "video": "placeholder"}]},
    "daily_workouts": {
      "day_1": {"exercises": [{"name": "...", "sets": 3, "reps": "...", "duration": "...", "video": "placeholder"}]}
    },
    "cool_down": {"exercises": [{"name": "...", "sets": 1, "reps": "...", "duration": "...", "video": "placeholder"}]}
  }
}

Rules:
- daily_workouts must contain exactly %d keys named day_1 .. day_%d.
- Every exercise must set "video" to the literal string "placeholder".
- Use concrete exercise names that can be searched on a video platform.`

const mealPromptTemplate = `You are a certified nutritionist. Create a weekly meal plan for a %s person whose goal is "%s", training %d days per week.

Respond with STRICT JSON only, no markdown fences, no commentary, exactly this shape:
{
  "meal_plan": {
    "daily_meals": {
      "day_1": {"meals": [{"name": "...", "description": "...", "calories": 0}]}
    }
  }
}

Rules:
- daily_meals must contain keys day_1 .. day_7.
- Every day has breakfast, lunch, dinner and one snack.
- Calories are integers per meal.`

func BuildWorkoutPrompt(level, goal string, duration, daysPerWeek int) string {
	return fmt.Sprintf(workoutPromptTemplate, level, goal, duration, daysPerWeek, daysPerWeek, daysPerWeek)
}

func BuildMealPrompt(level, goal string, daysPerWeek int) string {
	return fmt.Sprintf(mealPromptTemplate, level, goal, daysPerWeek)
}
