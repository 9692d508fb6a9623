package dto

import "fmt"

// GeneratePlanRequest carries the fitness parameters for both workout and
// meal generation. The daysPerweek key is what the mobile client sends.
type GeneratePlanRequest struct {
	FitnessLevel string `json:"fitnessLevel" validate:"required,oneof=beginner intermediate advanced"`
	FitnessGoal  string `json:"fitnessGoal" validate:"required"`
	Duration     int    `json:"duration" validate:"required,min=10,max=180"`
	DaysPerWeek  int    `json:"daysPerweek" validate:"required,min=1,max=7"`
}

// Exercise is a single entry in a plan section. Video starts as the
// model's placeholder and is overwritten by the enrichment step.
type Exercise struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets,omitempty"`
	Reps     string `json:"reps,omitempty"`
	Duration string `json:"duration,omitempty"`
	Video    string `json:"video"`
}

type WorkoutSection struct {
	Exercises []Exercise `json:"exercises"`
}

type WorkoutPlan struct {
	WarmUp        WorkoutSection            `json:"warm_up"`
	DailyWorkouts map[string]WorkoutSection `json:"daily_workouts"`
	CoolDown      WorkoutSection            `json:"cool_down"`
}

type Meal struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Calories    int    `json:"calories,omitempty"`
}

type MealDay struct {
	Meals []Meal `json:"meals"`
}

type MealPlan struct {
	DailyMeals map[string]MealDay `json:"daily_meals"`
}

type PlanData struct {
	WorkoutPlan *WorkoutPlan `json:"workout_plan,omitempty"`
	MealPlan    *MealPlan    `json:"meal_plan,omitempty"`
}

// GeneratePlanResponse is the consumer-facing envelope. Generation never
// surfaces a raw error to the caller; failures travel inside this shape.
type GeneratePlanResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    *PlanData `json:"data,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// QuotaExceededError signals that the free-tier quota for a plan kind is
// spent and an upgrade is required.
type QuotaExceededError struct {
	Kind string
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("free %s plan limit reached, upgrade to premium to continue", e.Kind)
}
