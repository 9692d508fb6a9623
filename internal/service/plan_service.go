package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RishavSingh2203/freaky-fit/internal/constant"
	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/logger"
	"github.com/RishavSingh2203/freaky-fit/pkg/events"
	"github.com/RishavSingh2203/freaky-fit/pkg/llm"
	"github.com/RishavSingh2203/freaky-fit/pkg/videosearch"

	"github.com/google/uuid"
)

type IPlanService interface {
	// GenerateWorkoutPlan runs the prompt -> model -> validate -> enrich
	// pipeline. It always returns a populated envelope; failures are
	// reported inside it, never as a Go error to the transport layer.
	GenerateWorkoutPlan(ctx context.Context, userId uuid.UUID, req *dto.GeneratePlanRequest) *dto.GeneratePlanResponse
	GenerateMealPlan(ctx context.Context, userId uuid.UUID, req *dto.GeneratePlanRequest) *dto.GeneratePlanResponse
}

type PlanService struct {
	llm         llm.Provider
	videos      videosearch.Searcher
	publisher   IPublisherService
	logger      logger.ILogger
	eventsTopic string
}

func NewPlanService(
	provider llm.Provider,
	videos videosearch.Searcher,
	publisher IPublisherService,
	logger logger.ILogger,
	eventsTopic string,
) IPlanService {
	return &PlanService{
		llm:         provider,
		videos:      videos,
		publisher:   publisher,
		logger:      logger,
		eventsTopic: eventsTopic,
	}
}

func (s *PlanService) GenerateWorkoutPlan(ctx context.Context, userId uuid.UUID, req *dto.GeneratePlanRequest) *dto.GeneratePlanResponse {
	prompt := constant.BuildWorkoutPrompt(req.FitnessLevel, req.FitnessGoal, req.Duration, req.DaysPerWeek)

	raw, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("plan", "workout generation failed", map[string]interface{}{
			"user":  userId.String(),
			"error": err.Error(),
		})
		return &dto.GeneratePlanResponse{
			Success: false,
			Message: "Failed to generate workout plan",
			Error:   err.Error(),
		}
	}

	plan, ok := parseWorkoutPlan(raw)
	if !ok {
		s.logger.Warn("plan", "model returned invalid workout shape", map[string]interface{}{
			"user": userId.String(),
		})
		return &dto.GeneratePlanResponse{
			Success: false,
			Message: "Invalid workout plan data received",
		}
	}

	if err := s.enrichWorkoutPlan(ctx, plan); err != nil {
		s.logger.Error("plan", "video enrichment failed", map[string]interface{}{
			"user":  userId.String(),
			"error": err.Error(),
		})
		return &dto.GeneratePlanResponse{
			Success: false,
			Message: "Failed to generate workout plan",
			Error:   err.Error(),
		}
	}

	if err := s.publisher.Publish(s.eventsTopic, events.NewPlanGenerated(userId, "workout")); err != nil {
		s.logger.Warn("plan", "failed to publish plan event", map[string]interface{}{
			"user":  userId.String(),
			"error": err.Error(),
		})
	}

	return &dto.GeneratePlanResponse{
		Success: true,
		Message: "Workout plan generated successfully",
		Data:    &dto.PlanData{WorkoutPlan: plan},
	}
}

func (s *PlanService) GenerateMealPlan(ctx context.Context, userId uuid.UUID, req *dto.GeneratePlanRequest) *dto.GeneratePlanResponse {
	prompt := constant.BuildMealPrompt(req.FitnessLevel, req.FitnessGoal, req.DaysPerWeek)

	raw, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("plan", "meal generation failed", map[string]interface{}{
			"user":  userId.String(),
			"error": err.Error(),
		})
		return &dto.GeneratePlanResponse{
			Success: false,
			Message: "Failed to generate meal plan",
			Error:   err.Error(),
		}
	}

	plan, ok := parseMealPlan(raw)
	if !ok {
		s.logger.Warn("plan", "model returned invalid meal shape", map[string]interface{}{
			"user": userId.String(),
		})
		return &dto.GeneratePlanResponse{
			Success: false,
			Message: "Invalid meal plan data received",
		}
	}

	if err := s.publisher.Publish(s.eventsTopic, events.NewPlanGenerated(userId, "meal")); err != nil {
		s.logger.Warn("plan", "failed to publish plan event", map[string]interface{}{
			"user":  userId.String(),
			"error": err.Error(),
		})
	}

	return &dto.GeneratePlanResponse{
		Success: true,
		Message: "Meal plan generated successfully",
		Data:    &dto.PlanData{MealPlan: plan},
	}
}

// parseWorkoutPlan decodes the model output and checks the required shape:
// warm_up, daily_workouts and cool_down must all be present with exercises.
func parseWorkoutPlan(raw string) (*dto.WorkoutPlan, bool) {
	var wrapper struct {
		WorkoutPlan *dto.WorkoutPlan `json:"workout_plan"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &wrapper); err != nil {
		return nil, false
	}
	plan := wrapper.WorkoutPlan
	if plan == nil {
		return nil, false
	}
	if len(plan.WarmUp.Exercises) == 0 || len(plan.DailyWorkouts) == 0 || len(plan.CoolDown.Exercises) == 0 {
		return nil, false
	}
	for _, day := range plan.DailyWorkouts {
		if len(day.Exercises) == 0 {
			return nil, false
		}
	}
	return plan, true
}

func parseMealPlan(raw string) (*dto.MealPlan, bool) {
	var wrapper struct {
		MealPlan *dto.MealPlan `json:"meal_plan"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &wrapper); err != nil {
		return nil, false
	}
	plan := wrapper.MealPlan
	if plan == nil || len(plan.DailyMeals) == 0 {
		return nil, false
	}
	for _, day := range plan.DailyMeals {
		if len(day.Meals) == 0 {
			return nil, false
		}
	}
	return plan, true
}

// enrichWorkoutPlan replaces every exercise's video placeholder with a real
// URL, one lookup at a time. A failed lookup aborts the whole plan; the
// caller wraps the error into the failure envelope.
func (s *PlanService) enrichWorkoutPlan(ctx context.Context, plan *dto.WorkoutPlan) error {
	if err := s.enrichSection(ctx, &plan.WarmUp); err != nil {
		return err
	}
	for key, day := range plan.DailyWorkouts {
		if err := s.enrichSection(ctx, &day); err != nil {
			return err
		}
		plan.DailyWorkouts[key] = day
	}
	return s.enrichSection(ctx, &plan.CoolDown)
}

func (s *PlanService) enrichSection(ctx context.Context, section *dto.WorkoutSection) error {
	for i := range section.Exercises {
		url, err := s.videos.SearchVideo(ctx, section.Exercises[i].Name+" exercise")
		if err != nil {
			return fmt.Errorf("video lookup for %q: %w", section.Exercises[i].Name, err)
		}
		section.Exercises[i].Video = url
	}
	return nil
}

// stripFences tolerates models that wrap JSON in markdown code fences
// despite instructions.
func stripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
